// Package carcheck looks up vehicle registration details by scraping a
// car-check website and keeps a local cache of past lookups that can be
// browsed, searched, deleted and shared.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, rod/).
package carcheck
