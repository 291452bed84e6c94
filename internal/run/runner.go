// Package run resolves execution contexts and drives engine commands to
// completion. It owns configuration-path resolution, the scoped
// working-directory discipline, server lookup against the compute inventory,
// and the wiring of presenters into a running engine command.
package run

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/skiffhq/skiff/internal/config"
	"github.com/skiffhq/skiff/internal/engine"
	"github.com/skiffhq/skiff/internal/errdefs"
	hcloudp "github.com/skiffhq/skiff/internal/platform/hcloud"
	"github.com/skiffhq/skiff/internal/platform/kube"
	sshp "github.com/skiffhq/skiff/internal/platform/ssh"
	"github.com/skiffhq/skiff/internal/ui"
)

// Factory function variables - can be replaced in tests for dependency injection.
var (
	loadConfig = config.Load

	currentBranch = detectBranch

	newCompute = func(token string) engine.Compute {
		return hcloudp.New(token)
	}

	newKeySource = func(cfg *config.Config) engine.KeySource {
		return sshp.NewKeySource(cfg.SSHDir)
	}

	newKubeClient = kube.NewFromKubeconfig
)

// Runner resolves one execution context and drives one engine command.
type Runner struct {
	// ConfigPath is the configuration file path as given on the command
	// line; empty means the default file name.
	ConfigPath string
	// Folder, when set, anchors config resolution and is entered for the
	// duration of configuration loading and branch detection.
	Folder string
	// Out is the stream presenters render to; defaults to stdout.
	Out io.Writer
}

// NewRunner creates a runner for one command invocation.
func NewRunner(configPath, folder string) *Runner {
	return &Runner{ConfigPath: configPath, Folder: folder, Out: os.Stdout}
}

func (r *Runner) out() io.Writer {
	if r.Out != nil {
		return r.Out
	}
	return os.Stdout
}

// ResolveConfigPath resolves the configuration file path to an absolute
// path. An already-absolute path is returned as is; a relative path is
// resolved against Folder when set, the process working directory otherwise.
func (r *Runner) ResolveConfigPath() (string, error) {
	path := r.ConfigPath
	if path == "" {
		path = config.DefaultFileName
	}
	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}
	if r.Folder != "" {
		path = filepath.Join(r.Folder, path)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", &errdefs.ConfigError{Reason: "failed to resolve config path", Err: err}
	}
	return abs, nil
}

// BuildContext loads and validates the configuration and produces a pending
// execution context. Folder is entered only for the duration of loading and
// branch detection; the original working directory is restored on every
// exit path. Branch detection failure is swallowed: the context proceeds
// with no branch.
func (r *Runner) BuildContext(target engine.Target, slug string) (*engine.Context, error) {
	path, err := r.ResolveConfigPath()
	if err != nil {
		return nil, err
	}

	var cfg *config.Config
	var branch string
	err = withWorkingDir(r.Folder, func() error {
		loaded, err := loadConfig(path)
		if err != nil {
			return err
		}
		cfg = loaded

		if b, err := currentBranch("."); err == nil {
			branch = b
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	ec, err := engine.NewContext(cfg, target, slug)
	if err != nil {
		return nil, err
	}
	ec.Branch = branch
	return ec, nil
}

// Execute builds a context, loads SSH credentials into it, and runs one
// engine command synchronously with the step presenter and state sink wired
// in. The mutated context is returned alongside any command error so the
// dispatcher can still summarize partial progress.
func (r *Runner) Execute(ctx context.Context, factory engine.Factory, target engine.Target, slug string) (*engine.Context, error) {
	ec, err := r.BuildContext(target, slug)
	if err != nil {
		return nil, err
	}

	keys, err := newKeySource(ec.Config).ReadSSHKeys()
	if err != nil {
		return nil, err
	}
	ec.Keys = keys

	presenter := ui.NewStepPresenter(r.out())
	formatter := ui.NewFormatter(r.out())

	cmd := factory(ec, presenter.Handle, formatter.StateChange)
	if err := cmd.Run(ctx); err != nil {
		return ec, err
	}
	return ec, nil
}

// FindServer resolves one server from the compute inventory. The expected
// name is the context prefix, or prefix-name when a logical server is
// requested. An exact match wins; otherwise the first inventory entry whose
// name starts with the prefix is taken, so single-server and grouped naming
// schemes resolve through the same lookup.
func (r *Runner) FindServer(ctx context.Context, ec *engine.Context, name string) (engine.Server, error) {
	prefix := ec.Prefix()
	expected := prefix
	if name != "" {
		expected = prefix + "-" + name
	}

	servers, err := newCompute(ec.Config.Token).ListServers(ctx)
	if err != nil {
		return engine.Server{}, err
	}

	var fallback *engine.Server
	for i := range servers {
		if servers[i].Name == expected {
			return servers[i], nil
		}
		if fallback == nil && strings.HasPrefix(servers[i].Name, prefix) {
			fallback = &servers[i]
		}
	}
	if fallback != nil {
		return *fallback, nil
	}
	return engine.Server{}, &errdefs.NotFoundError{Resource: fmt.Sprintf("server matching %q", expected)}
}

// Inventory returns every inventory server belonging to the context,
// keyed by logical name: the bare-prefix server is "primary", grouped
// servers keep the remainder of their name after the prefix.
func (r *Runner) Inventory(ctx context.Context, ec *engine.Context) (map[string]engine.Server, error) {
	prefix := ec.Prefix()
	servers, err := newCompute(ec.Config.Token).ListServers(ctx)
	if err != nil {
		return nil, err
	}

	out := make(map[string]engine.Server)
	for _, s := range servers {
		switch {
		case s.Name == prefix:
			out["primary"] = s
		case strings.HasPrefix(s.Name, prefix+"-"):
			out[strings.TrimPrefix(s.Name, prefix+"-")] = s
		}
	}
	return out, nil
}

// BuildOperationalContext builds a context pre-populated with a resolved
// server address and SSH credentials, for read-only operational commands
// that do not run the full engine.
func (r *Runner) BuildOperationalContext(ctx context.Context, target engine.Target, slug, server string) (*engine.Context, error) {
	ec, err := r.BuildContext(target, slug)
	if err != nil {
		return nil, err
	}

	srv, err := r.FindServer(ctx, ec, server)
	if err != nil {
		return nil, err
	}
	ec.ServerIP = srv.PublicIPv4
	ec.Servers[srv.Name] = srv

	keys, err := newKeySource(ec.Config).ReadSSHKeys()
	if err != nil {
		return nil, err
	}
	ec.Keys = keys
	return ec, nil
}

// KubeconfigPath returns where the engine stores the kubeconfig for one
// resource prefix.
func KubeconfigPath(prefix string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", &errdefs.ConfigError{Reason: "failed to determine home directory", Err: err}
	}
	return filepath.Join(home, ".skiff", prefix, "kubeconfig"), nil
}

// KubeClient builds the kubectl-equivalent client for the context's cluster
// from the kubeconfig the engine wrote during deploy.
func (r *Runner) KubeClient(ec *engine.Context) (*kube.Client, error) {
	path, err := KubeconfigPath(ec.Prefix())
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); err != nil {
		return nil, &errdefs.ConfigError{Reason: fmt.Sprintf("kubeconfig not found at %s - has this environment been deployed?", path)}
	}
	client, err := newKubeClient(path)
	if err != nil {
		return nil, err
	}
	return client.InNamespace(ec.Config.Namespace), nil
}
