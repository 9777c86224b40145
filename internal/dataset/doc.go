// Package dataset provides the in-memory tabular dataset shared by the
// case-study pipelines, backed by a gota dataframe.
//
// A Dataset moves through the pipeline by value transfer: each stage
// receives one, derives a new one, and returns it. Cleaning operations
// chain, carrying the first error forward the way gota's own API does:
//
//	clean := ds.
//		FilterRange("price", 10, 1000).
//		DropMissing([]string{"neighbourhood_group", "room_type", "price"}).
//		FillConstant("number_of_reviews", 0)
//	if err := clean.Err(); err != nil { … }
//
// Loading is the one soft-failure point in the system: LoadOrSynthesize
// substitutes a seeded synthetic dataset when the input file is absent.
package dataset
