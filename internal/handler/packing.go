package handler

import "net/http"

// GetPackingList handles GET /itineraries/{id}/packing-list.
func (s *Server) GetPackingList(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	itineraryID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	l, err := s.packing.Get(r.Context(), userID, itineraryID)
	if err != nil {
		writeServiceError(w, r, err, "packing list")
		return
	}
	writeJSON(w, http.StatusOK, packingListToResponse(l))
}

// GeneratePackingList handles POST /itineraries/{id}/packing-list.
func (s *Server) GeneratePackingList(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	itineraryID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	l, err := s.packing.Generate(r.Context(), userID, itineraryID)
	if err != nil {
		writeGenerationError(w, r, err, "packing list")
		return
	}
	writeJSON(w, http.StatusCreated, packingListToResponse(l))
}

// AddPackingItem handles POST /itineraries/{id}/packing-list/items.
func (s *Server) AddPackingItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	itineraryID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var body packingItemRequest
	if !decodeJSON(w, r, &body) {
		return
	}

	item, err := s.packing.AddItem(r.Context(), userID, itineraryID, body.toDomain())
	if err != nil {
		writeServiceError(w, r, err, "packing list")
		return
	}
	writeJSON(w, http.StatusCreated, packingItemToResponse(item))
}

// UpdatePackingItem handles PATCH /itineraries/{id}/packing-list/items/{itemID}.
func (s *Server) UpdatePackingItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	itineraryID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	itemID, ok := pathUUID(w, r, "itemID")
	if !ok {
		return
	}
	var body packingItemPatchRequest
	if !decodeJSON(w, r, &body) {
		return
	}

	item, err := s.packing.UpdateItem(r.Context(), userID, itineraryID, itemID, body.toDomain())
	if err != nil {
		writeServiceError(w, r, err, "packing item")
		return
	}
	writeJSON(w, http.StatusOK, packingItemToResponse(item))
}

// DeletePackingItem handles DELETE /itineraries/{id}/packing-list/items/{itemID}.
func (s *Server) DeletePackingItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	itineraryID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	itemID, ok := pathUUID(w, r, "itemID")
	if !ok {
		return
	}

	if err := s.packing.DeleteItem(r.Context(), userID, itineraryID, itemID); err != nil {
		writeServiceError(w, r, err, "packing item")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
