// Package instacart implements the basket analytics case study: join
// the order, product, department, and aisle tables into a master
// dataset and report product, department, and order timing performance.
package instacart
