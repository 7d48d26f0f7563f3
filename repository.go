package releasemanager

// Repository identifies the project publishing the releases.
// GetSlug gives its maintainer and name; Get gives whatever the source API uses to address it.
type Repository interface {
	GetSlug() (string, string, error)
	Get() (interface{}, error)
}

// RepositoryID is a numeric project ID. Only GitLab can address a project this way.
type RepositoryID int

var _ Repository = RepositoryID(0)

// NewRepositoryID creates a repository ID from an integer
func NewRepositoryID(id int) RepositoryID {
	return RepositoryID(id)
}

// GetSlug always fails: an ID has no maintainer nor name.
func (r RepositoryID) GetSlug() (string, string, error) {
	return "", "", ErrInvalidID
}

func (r RepositoryID) Get() (interface{}, error) {
	return int(r), nil
}
