package poppler

import (
	"context"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Merge concatenates the input documents into out with pdfunite
func (r *Runner) Merge(ctx context.Context, out string, inputs ...string) error {
	if len(inputs) == 0 {
		return ErrNoInput
	}
	args := append(append([]string{}, inputs...), out)
	_, err := r.run(ctx, "pdfunite", args...)
	return err
}

// Validate checks the document structure with pdfcpu
func (r *Runner) Validate(path string) error {
	conf := model.NewDefaultConfiguration()
	conf.UserPW = r.config.UserPassword
	conf.OwnerPW = r.config.OwnerPassword

	if err := api.ValidateFile(path, conf); err != nil {
		return fmt.Errorf("invalid PDF %s: %w", path, err)
	}
	return nil
}
