package lsp

// Open editor buffers and their cached analysis live behind the same
// server mutex: a result in s.results always corresponds to the text
// currently in s.docs.

// storeDocument records the current text of an open buffer and drops
// any analysis computed from older text.
func (s *Server) storeDocument(uri, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[uri] = content
	delete(s.results, uri)
}

// dropDocument forgets a closed buffer and its analysis.
func (s *Server) dropDocument(uri string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, uri)
	delete(s.results, uri)
}

// document returns the current text of an open buffer.
func (s *Server) document(uri string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	content, ok := s.docs[uri]
	return content, ok
}
