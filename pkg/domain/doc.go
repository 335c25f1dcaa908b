// Package domain contains the core domain entities and types used by the
// application: exported Person records, live User records fetched from the ST
// API, and the candidate/result types produced when matching the two. These
// types are intentionally free of infrastructure concerns so they can be
// shared across packages.
package domain
