// Package local implements the device services on the local machine:
// config-seeded permissions, terminal notifications and .ics calendars.
package local

import (
	"context"
	"sync"

	"tableflip.dev/confusion/pkg/device"
)

// PromptFunc asks the user whether to grant a capability.
type PromptFunc func(ctx context.Context, c device.Capability) (bool, error)

// Permissions remembers one status per capability. Undetermined
// capabilities are asked through Prompt; a denial sticks for the session.
type Permissions struct {
	Prompt PromptFunc
	// Console, when set, is held while Prompt runs.
	Console *Console

	mu     sync.Mutex
	status map[device.Capability]device.PermissionStatus
}

// NewPermissions seeds the statuses, usually from config.
func NewPermissions(notifications, calendar device.PermissionStatus, prompt PromptFunc) *Permissions {
	return &Permissions{
		Prompt: prompt,
		status: map[device.Capability]device.PermissionStatus{
			device.Notifications: notifications,
			device.Calendar:      calendar,
		},
	}
}

func (p *Permissions) get(c device.Capability) device.PermissionStatus {
	if s, ok := p.status[c]; ok && s != "" {
		return s
	}
	return device.Undetermined
}

// Get implements device.Permissions.
func (p *Permissions) Get(_ context.Context, c device.Capability) (device.PermissionStatus, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.get(c), nil
}

// Ask implements device.Permissions.
func (p *Permissions) Ask(ctx context.Context, c device.Capability) (device.PermissionStatus, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	current := p.get(c)
	if current != device.Undetermined || p.Prompt == nil {
		return current, nil
	}
	var (
		ok  bool
		err error
	)
	p.Console.Do(func() { ok, err = p.Prompt(ctx, c) })
	if err != nil {
		return device.Undetermined, err
	}
	if p.status == nil {
		p.status = make(map[device.Capability]device.PermissionStatus)
	}
	if ok {
		p.status[c] = device.Granted
	} else {
		p.status[c] = device.Denied
	}
	return p.status[c], nil
}
