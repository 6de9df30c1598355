package bptree

import "github.com/sirupsen/logrus"

// MinOrder is the smallest order that leaves room to split and merge nodes.
const MinOrder = 3

var defaultOptions = Options{
	Order: 64,
}

// Options represents the configuration options for the B+ tree.
type Options struct {
	// Order is the maximum number of entries a node may hold. A node that
	// grows past it splits, a non-root node that falls below (Order+1)/2
	// merges with or borrows from a sibling. Must be at least MinOrder.
	Order int `json:"order"`

	// Logger receives trace records of structural changes. Defaults to
	// logger.L.
	Logger *logrus.Logger `json:"-"`
}

// ScanOptions controls direction and start-key inclusion of a scan.
type ScanOptions struct {
	// Reverse scans in descending key order following left leaf links.
	Reverse bool

	// Strict excludes the start key itself from ScanFrom.
	Strict bool
}
