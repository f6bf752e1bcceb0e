// Package pttdigest collects a PTT user's board messages from a paginated
// forum listing and consolidates them into one plain-text report.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, rod/, fs/).
package pttdigest
