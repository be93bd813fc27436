package contributors

import (
	"context"

	"github.com/simonhull/firebird-suite/hatch/internal/manifest"
	"github.com/simonhull/firebird-suite/hatch/internal/pipeline"
)

// Git writes .gitattributes and marks the repository as git.
type Git struct{}

func (Git) Name() string { return "git" }

func (g Git) Contribute(ctx context.Context, pctx pipeline.Context) (pipeline.Contribution, error) {
	files, err := copyAll(pctx, g.Name(), "git")
	if err != nil {
		return pipeline.Contribution{}, err
	}

	var patch manifest.Patch
	if pctx.Answers.URLRepository != "" {
		patch = manifest.Patch{"repository": map[string]any{"type": "git"}}
	}
	return pipeline.Contribution{Files: files, Patch: patch}, nil
}
