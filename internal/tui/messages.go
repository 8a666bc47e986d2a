package tui

import (
	"github.com/MKhiriev/go-area-keeper/internal/events"
	"github.com/MKhiriev/go-area-keeper/models"
)

// NavigateTo switches the active page of [RootModel]. Payload, when set, is
// delivered to the target page as its first message.
type NavigateTo struct {
	Page    string
	Payload any
}

// LoginResult finishes an async login attempt.
type LoginResult struct {
	Err      error
	Username string
	User     models.User
}

// RegisterResult finishes an async registration attempt.
type RegisterResult struct {
	Err      error
	Username string
}

// RegisterSuccessNotice is shown on the menu page after registration.
type RegisterSuccessNotice struct {
	Username string
}

type pageLoadedMsg struct {
	items    []models.Area
	hasAreas bool
	err      error
}

type categoriesLoadedMsg struct {
	categories models.CategoryMap
	err        error
}

type detailLoadedMsg struct {
	area models.Area
	err  error
}

type areaSavedMsg struct {
	err error
}

type areaDeletedMsg struct {
	err error
}

type reconcileDoneMsg struct {
	err error
}

type engineEventMsg struct {
	event events.Event
}
