package filesystem

import (
	"fmt"
	"os/user"
	"strconv"

	"github.com/kamal-hamza/fsviz/internal/core/ports"
)

// SystemOwnerResolver looks owner ids up in the host account database.
// Results, including misses, are cached for the life of the resolver.
type SystemOwnerResolver struct {
	names  map[uint32]string
	misses map[uint32]error
}

// NewSystemOwnerResolver creates a resolver backed by os/user
func NewSystemOwnerResolver() *SystemOwnerResolver {
	return &SystemOwnerResolver{
		names:  make(map[uint32]string),
		misses: make(map[uint32]error),
	}
}

var _ ports.OwnerResolver = (*SystemOwnerResolver)(nil)

// Resolve returns the account name owning uid
func (r *SystemOwnerResolver) Resolve(uid uint32) (string, error) {
	if name, ok := r.names[uid]; ok {
		return name, nil
	}
	if err, ok := r.misses[uid]; ok {
		return "", err
	}

	u, err := user.LookupId(strconv.FormatUint(uint64(uid), 10))
	if err != nil {
		err = fmt.Errorf("lookup uid %d: %w", uid, err)
		r.misses[uid] = err
		return "", err
	}

	r.names[uid] = u.Username
	return u.Username, nil
}
