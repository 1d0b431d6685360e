package notes

// Pure helpers over the in-memory collection. Insertion order is preserved:
// new notes append, edits keep their position, deletes remove in place.

// Find returns the note with the given id.
func Find(collection []Note, id string) (Note, bool) {
	for _, n := range collection {
		if n.ID == id {
			return n, true
		}
	}
	return Note{}, false
}

// Append adds a note to the end of the collection.
func Append(collection []Note, n Note) []Note {
	return append(collection, n)
}

// Replace swaps the note matching updated.ID in place. The collection is
// unchanged when no note matches.
func Replace(collection []Note, updated Note) []Note {
	for i, n := range collection {
		if n.ID == updated.ID {
			collection[i] = updated
			break
		}
	}
	return collection
}

// Remove deletes the note with the given id and returns the updated
// collection. Removing a nonexistent id is a no-op.
func Remove(collection []Note, id string) []Note {
	for i, n := range collection {
		if n.ID == id {
			return append(collection[:i], collection[i+1:]...)
		}
	}
	return collection
}
