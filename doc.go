// Package apriori mines frequent item sets and association rules from
// transactional data using the Apriori algorithm. It supports two adaptive
// search modes — relaxing a minimum support threshold, or relaxing a
// minimum confidence threshold — to hit a target item-set or rule count,
// and an optional temporal dimension that attaches validity intervals to
// transactions and propagates them onto derived rules.
//
// Item equality, hashing, and total order, along with transaction
// iteration, are supplied by the caller through the Item and Transaction
// interfaces; this package owns only the mining pipeline itself.
package apriori
