// Package app holds the domain store: the journal and library collections,
// their hydration from storage and the mutations the views can request.
package app
