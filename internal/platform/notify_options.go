// Package platform delivers desktop notifications using each operating
// system's native mechanism.
package platform

import "time"

// DefaultAppName identifies the application to the notification service.
const DefaultAppName = "Easel"

// DefaultTimeout is how long a notification stays visible when the platform
// honours a timeout.
const DefaultTimeout = 5 * time.Second

// Options configures how a notification is displayed on the host platform.
type Options struct {
	// IconPath, when non-empty, points to an image file the notification center
	// should display with the notification if supported by the platform.
	IconPath string
	// AppName overrides DefaultAppName.
	AppName string
	// Timeout overrides DefaultTimeout. Negative means never expire.
	Timeout time.Duration
}

func (o Options) appName() string {
	if o.AppName == "" {
		return DefaultAppName
	}
	return o.AppName
}

func (o Options) timeout() time.Duration {
	if o.Timeout == 0 {
		return DefaultTimeout
	}
	return o.Timeout
}
