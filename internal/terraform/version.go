package terraform

import (
	"encoding/json"
	"fmt"
)

// versionDocument is the subset of `terraform version -json` output.
type versionDocument struct {
	TerraformVersion string `json:"terraform_version"`
}

// Version returns the installed terraform version as self-reported by
// `terraform version -json`, run from dir.
func (t *Terraform) Version(dir string) (string, error) {
	res, err := t.exec(dir, true, "version", "-json")
	if err != nil {
		return "", err
	}
	var doc versionDocument
	if err := json.Unmarshal([]byte(res.Stdout), &doc); err != nil {
		return "", fmt.Errorf("interpretando la versión de terraform: %w", err)
	}
	return doc.TerraformVersion, nil
}
