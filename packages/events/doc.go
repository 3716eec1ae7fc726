// Package events records which events fired on which targets during a test.
//
// A spy is keyed by the exact target descriptor it was installed with: a
// selector string and an element handle are different keys even when the
// selector resolves to that element. Query with the same descriptor you spied
// with.
//
// CleanUp forgets records and handlers but leaves the handlers attached to
// their elements. Those stale handlers keep running when events fire and
// record nothing.
package events
