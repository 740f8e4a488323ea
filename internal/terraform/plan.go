package terraform

import (
	"encoding/json"
	"strings"
)

// ResourceChange is one proposed change from a rendered plan: a resource
// address and its ordered action set.
type ResourceChange struct {
	Address string
	Actions []string
}

// ActionList renders the action set the way the selector displays it.
func (c ResourceChange) ActionList() string {
	return strings.Join(c.Actions, ",")
}

// IsDestructive reports whether the change deletes the resource.
func (c ResourceChange) IsDestructive() bool {
	return c.hasAction("delete")
}

// IsAdditive reports whether the change creates the resource.
func (c ResourceChange) IsAdditive() bool {
	return c.hasAction("create")
}

func (c ResourceChange) hasAction(action string) bool {
	for _, a := range c.Actions {
		if a == action {
			return true
		}
	}
	return false
}

// MalformedPlanError reports structured plan output that could not be
// decoded.
type MalformedPlanError struct {
	Err error
}

func (e *MalformedPlanError) Error() string {
	return "la salida estructurada del plan no es válida: " + e.Err.Error()
}

func (e *MalformedPlanError) Unwrap() error { return e.Err }

// planDocument is the subset of `terraform show -json` the selector needs.
type planDocument struct {
	ResourceChanges []struct {
		Address string `json:"address"`
		Change  struct {
			Actions []string `json:"actions"`
		} `json:"change"`
	} `json:"resource_changes"`
}

// Changes generates a plan into planFile and renders it as structured
// data, returning the proposed changes in the tool's order. Pure no-op
// entries are dropped. Failures from either supervised call propagate
// unchanged; an undecodable render yields *MalformedPlanError.
func (t *Terraform) Changes(envPath string, destroy bool, planFile string, extraArgs []string) ([]ResourceChange, error) {
	planArgs := append([]string{"plan", "-out", planFile}, extraArgs...)
	if destroy {
		planArgs = append(planArgs, "-destroy")
	}
	if _, err := t.exec(envPath, false, planArgs...); err != nil {
		return nil, err
	}

	res, err := t.exec(envPath, true, "show", "-json", planFile)
	if err != nil {
		return nil, err
	}

	var doc planDocument
	if err := json.Unmarshal([]byte(res.Stdout), &doc); err != nil {
		return nil, &MalformedPlanError{Err: err}
	}

	var changes []ResourceChange
	for _, rc := range doc.ResourceChanges {
		if len(rc.Change.Actions) == 1 && rc.Change.Actions[0] == "no-op" {
			continue
		}
		changes = append(changes, ResourceChange{Address: rc.Address, Actions: rc.Change.Actions})
	}
	return changes, nil
}
