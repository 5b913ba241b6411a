// Package domain defines the core business entities of the linkden
// service: users, collections, links, tags and the association records
// that tie them together. Entities carry their own validation; all
// persistence concerns live in the store layer.
package domain
