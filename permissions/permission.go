package permissions

import (
	_ "embed"
	"encoding/json"
	"slices"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

// Action is one numbered menu entry. Roles lists who may see and run it; entries of the
// main menu carry no roles.
type Action struct {
	Number int      `json:"number"`
	Name   string   `json:"name"`
	Label  string   `json:"label"`
	Roles  []string `json:"roles"`
}

func (a Action) AllowedFor(role string) bool {
	return slices.Contains(a.Roles, role)
}

type PermissionData struct {
	MainMenu []Action `json:"main_menu"`
	Actions  []Action `json:"actions"`
	Logout   Action   `json:"logout"`
	Exit     Action   `json:"exit"`
}

// ActionsFor returns the actions role may run, in menu order.
func (r *PermissionData) ActionsFor(role string) []Action {
	actions := []Action{}

	for _, action := range r.Actions {
		if action.AllowedFor(role) {
			actions = append(actions, action)
		}
	}

	return actions
}

// Find returns the action behind number if role may run it.
func (r *PermissionData) Find(role string, number int) (Action, bool) {
	idx := slices.IndexFunc(r.Actions, func(action Action) bool {
		return action.Number == number && action.AllowedFor(role)
	})

	if idx == -1 {
		return Action{}, false
	}

	return r.Actions[idx], true
}

func Get() *PermissionData {
	var permissions PermissionData

	err := json.Unmarshal(permissionsData, &permissions)
	if err != nil {
		log.Err(err).Msg("Failed to decode embedded permissions")

		return nil
	}

	log.Debug().Int("actions", len(permissions.Actions)).Msg("Successfully loaded embedded permissions")

	return &permissions
}
