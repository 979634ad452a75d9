package filesystem

import (
	"os"
	"os/user"
	"runtime"
	"testing"
)

func TestSystemOwnerResolver_CurrentUser(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("numeric uids not available")
	}
	current, err := user.Current()
	if err != nil {
		t.Skipf("cannot determine current user: %v", err)
	}

	r := NewSystemOwnerResolver()
	name, err := r.Resolve(uint32(os.Getuid()))
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if name != current.Username {
		t.Errorf("Resolve() = %q, want %q", name, current.Username)
	}

	// Second lookup is served from the cache
	if again, _ := r.Resolve(uint32(os.Getuid())); again != name {
		t.Errorf("cached Resolve() = %q, want %q", again, name)
	}
}

func TestSystemOwnerResolver_UnknownID(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("numeric uids not available")
	}

	r := NewSystemOwnerResolver()
	const unmapped = 4000000001
	if _, err := r.Resolve(unmapped); err == nil {
		t.Skip("uid unexpectedly mapped on this host")
	}
	if _, err := r.Resolve(unmapped); err == nil {
		t.Error("cached miss should still fail")
	}
}
