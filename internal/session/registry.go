package session

// The registries are insert-only maps keyed by opaque ids. They are owned
// exclusively by the Session and are never handed out to other components;
// all lookups are checked so that a missing id fails before any mutation.

type documentRegistry struct {
	docs map[DocumentID]*Document
}

func newDocumentRegistry() *documentRegistry {
	return &documentRegistry{docs: make(map[DocumentID]*Document)}
}

// insert registers a document under a freshly generated id.
func (r *documentRegistry) insert(doc *Document) DocumentID {
	id := NewDocumentID()
	r.docs[id] = doc
	return id
}

// get returns the document with the given id, or InvalidDocumentIDError.
func (r *documentRegistry) get(id DocumentID) (*Document, error) {
	doc, ok := r.docs[id]
	if !ok {
		return nil, InvalidDocumentIDError{ID: id}
	}
	return doc, nil
}

// contains reports whether a document with the given id is registered.
func (r *documentRegistry) contains(id DocumentID) bool {
	_, ok := r.docs[id]
	return ok
}

type viewRegistry struct {
	views map[ViewID]*View
}

func newViewRegistry() *viewRegistry {
	return &viewRegistry{views: make(map[ViewID]*View)}
}

// insert registers a view under a freshly generated id.
func (r *viewRegistry) insert(v *View) ViewID {
	id := NewViewID()
	r.views[id] = v
	return id
}

// get returns the view with the given id, or InvalidViewIDError.
func (r *viewRegistry) get(id ViewID) (*View, error) {
	v, ok := r.views[id]
	if !ok {
		return nil, InvalidViewIDError{ID: id}
	}
	return v, nil
}
