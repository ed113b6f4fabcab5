package repo

import (
	"context"
	"os"
	"strings"

	"github.com/firefly-engineering/skillify/internal/errors"
	"github.com/firefly-engineering/skillify/internal/logging"
	"github.com/firefly-engineering/skillify/internal/system"
)

// Git shallow-clones a remote repository into a temporary directory.
// The clone is an opaque, potentially slow, cancellable step; its only
// contract with the pipeline is "returns a local directory path or fails".
type Git struct {
	URL string

	// Keep leaves the clone on disk after the run.
	Keep bool

	Exec system.CommandExecutor
}

func (g *Git) Fetch(ctx context.Context) (string, func(), error) {
	exec := g.Exec
	if exec == nil {
		exec = system.DefaultExecutor()
	}

	tmp, err := os.MkdirTemp("", "skillify-clone-")
	if err != nil {
		return "", nil, errors.CloneFailed(g.URL, err)
	}

	dir := tmp + string(os.PathSeparator) + "repo"
	logging.Debug("cloning repository", "url", g.URL, "dir", dir)

	output, err := exec.Execute(ctx, "git", "clone", "--depth", "1", g.URL, dir)
	if err != nil {
		os.RemoveAll(tmp)
		msg := strings.TrimSpace(string(output))
		if msg != "" {
			return "", nil, errors.CloneFailed(g.URL, errors.New(errors.ExitRepository, msg))
		}
		return "", nil, errors.CloneFailed(g.URL, err)
	}

	cleanup := func() {
		if g.Keep {
			logging.Debug("keeping clone", "dir", dir)
			return
		}
		os.RemoveAll(tmp)
	}
	return dir, cleanup, nil
}

var _ Provider = (*Git)(nil)
