//go:build linux

package platform

import (
	"github.com/godbus/dbus/v5"
)

const (
	notifyDest  = "org.freedesktop.Notifications"
	notifyPath  = dbus.ObjectPath("/org/freedesktop/Notifications")
	notifyCall  = notifyDest + ".Notify"
	urgencyLow  = byte(0)
	neverExpire = int32(0)
)

// Notify sends a desktop notification through the org.freedesktop.Notifications
// service on the session bus.
func Notify(title, body string, opts Options) error {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return err
	}
	defer conn.Close()

	hints := map[string]dbus.Variant{
		"urgency": dbus.MakeVariant(urgencyLow),
	}
	if opts.IconPath != "" {
		hints["image-path"] = dbus.MakeVariant(opts.IconPath)
	}
	expire := neverExpire
	if t := opts.timeout(); t > 0 {
		expire = int32(t.Milliseconds())
	}
	obj := conn.Object(notifyDest, notifyPath)
	call := obj.Call(notifyCall, 0,
		opts.appName(), uint32(0), opts.IconPath, title, body, []string{}, hints, expire)
	return call.Err
}
