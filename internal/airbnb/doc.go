// Package airbnb implements the listing revenue case study: clean the
// NYC listings table, derive revenue and category features, and report
// revenue potential per neighbourhood and room type.
package airbnb
