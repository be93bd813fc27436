package contributors

import (
	"context"

	"github.com/simonhull/firebird-suite/hatch/internal/answers"
	"github.com/simonhull/firebird-suite/hatch/internal/manifest"
	"github.com/simonhull/firebird-suite/hatch/internal/pipeline"
	"github.com/simonhull/firebird-suite/hatch/internal/variant"
)

// LicenseOptions identifies the copyright holder.
type LicenseOptions struct {
	Name    string
	Email   string
	Website string
}

// LicenseOptionsFrom maps the author answers onto license options.
func LicenseOptionsFrom(rec answers.Record) LicenseOptions {
	return LicenseOptions{
		Name:    rec.AuthorName,
		Email:   rec.AuthorEmail,
		Website: rec.AuthorHomepage,
	}
}

// License renders an MIT LICENSE for the options' holder.
type License struct {
	Options LicenseOptions
}

// SPDX identifier written to package.json.
const licenseID = "MIT"

func (License) Name() string { return "license" }

func (l License) Contribute(ctx context.Context, pctx pipeline.Context) (pipeline.Contribution, error) {
	data := struct {
		LicenseOptions
		Year int
	}{l.Options, pctx.Year}

	files, err := pctx.Materializer.Plan(variant.TemplateSet{
		Name:   l.Name(),
		Source: assetRoot + "/license",
		Class:  variant.Templates,
		Dest:   ".",
	}, pctx.Dest, data)
	if err != nil {
		return pipeline.Contribution{}, err
	}
	return pipeline.Contribution{
		Files: files,
		Patch: manifest.Patch{"license": licenseID},
	}, nil
}
