// Package store owns the write path of the flat-file memory log.
//
// The log is a single append-only text file. Store loads it whole (a
// missing file reads as empty), creates it with a title header on Init,
// and appends formatted entry blocks under one of two insertion policies:
// at the end of file, or immediately after the document title for users
// who keep newest entries on top.
//
//	st, _ := store.New("~/notes/memory.md" /* expanded by config */, store.InsertBottom)
//	_ = st.Append(store.Draft{
//	    Tags:     []string{"todo"},
//	    Body:     "Buy milk",
//	    Reminder: "2026-02-03",
//	})
//
// The search core never writes; it consumes Load output through the
// parser. Single-writer use is assumed throughout.
package store
