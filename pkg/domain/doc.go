// Package domain contains the entities of the publishing model: authors,
// magazines and the articles joining them. Entities validate themselves on
// construction and mutation and are free of storage concerns; registration
// and queries live in the storage and catalog packages.
package domain
