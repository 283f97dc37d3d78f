package session

import "github.com/PabloGalante/safehaven/internal/domain"

// Store keeps session states between requests.
type Store interface {
	Save(st *State)
	Get(id domain.SessionID) (*State, error)
	Delete(id domain.SessionID)
}
