// Package constants defines shared constant values used throughout homer.
// Centralizing these magic strings keeps discovery, validation and the
// terraform/packer wrappers in agreement.
package constants

const (
	// TerraformFileGlob matches the files that make a directory a valid
	// Terraform environment.
	TerraformFileGlob = "*.tf"

	// TerraformRootSubdir is a conventional child directory that may hold
	// the environments when the repository root itself does not.
	TerraformRootSubdir = "terraform"

	// VersionPinFile pins the required Terraform version for a project.
	// Found by walking upward from the project root.
	VersionPinFile = ".terraform-version"

	// PackerAppDir is the directory under the project root that holds
	// Packer application definitions.
	PackerAppDir = "amis"

	// PackerFileGlob matches the files that make a directory a valid
	// Packer application.
	PackerFileGlob = "*.pkr.hcl"

	// PlanFileSuffix is the extension for transient plan artifacts.
	PlanFileSuffix = ".tfplan"

	// ConfigFileName is the optional per-project configuration file.
	ConfigFileName = "homer.toml"
)
