// Package ssh loads SSH credentials and executes commands on provisioned
// servers over the SSH protocol.
package ssh

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/crypto/ssh"

	"github.com/skiffhq/skiff/internal/engine"
	"github.com/skiffhq/skiff/internal/errdefs"
)

// keyNames are tried in order when loading credentials.
var keyNames = []string{"id_ed25519", "id_rsa"}

// KeySource loads an SSH key pair from a directory.
type KeySource struct {
	dir string
}

// NewKeySource creates a key source for dir; empty means ~/.ssh.
func NewKeySource(dir string) *KeySource {
	return &KeySource{dir: dir}
}

// ReadSSHKeys loads the first usable key pair from the source directory.
// The private key must parse; a missing public key file is tolerated.
func (s *KeySource) ReadSSHKeys() (*engine.KeyPair, error) {
	dir := s.dir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, &errdefs.ConfigError{Reason: "failed to determine home directory", Err: err}
		}
		dir = filepath.Join(home, ".ssh")
	}

	for _, name := range keyNames {
		path := filepath.Join(dir, name)
		// #nosec G304
		private, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if _, err := ssh.ParsePrivateKey(private); err != nil {
			return nil, &errdefs.ConfigError{Reason: fmt.Sprintf("failed to parse private key %s", path), Err: err}
		}

		pair := &engine.KeyPair{PrivateKey: private}
		if public, err := os.ReadFile(path + ".pub"); err == nil {
			pair.PublicKey = public
		}
		return pair, nil
	}

	return nil, &errdefs.ConfigError{Reason: fmt.Sprintf("no ssh key found in %s (looked for %v)", dir, keyNames)}
}
