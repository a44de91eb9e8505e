package config

import "github.com/bnema/appshell/internal/domain/entity"

// AppOptions converts the loaded config into the session options.
func (c *Config) AppOptions() *entity.AppOptions {
	return &entity.AppOptions{
		Name:         c.App.Name,
		Version:      c.App.Version,
		TargetURL:    c.App.TargetURL,
		InternalURLs: append([]string(nil), c.App.InternalURLs...),

		Width:     c.Window.Width,
		Height:    c.Window.Height,
		MinWidth:  c.Window.MinWidth,
		MinHeight: c.Window.MinHeight,
		MaxWidth:  c.Window.MaxWidth,
		MaxHeight: c.Window.MaxHeight,
		X:         copyInt(c.Window.X),
		Y:         copyInt(c.Window.Y),

		Zoom:      c.Behavior.Zoom,
		UserAgent: c.Behavior.UserAgent,

		Insecure:           c.Behavior.Insecure,
		HideWindowFrame:    c.Window.HideWindowFrame,
		ShowMenuBar:        c.Window.ShowMenuBar,
		FullScreen:         c.Window.FullScreen,
		AlwaysOnTop:        c.Window.AlwaysOnTop,
		Maximize:           c.Window.Maximize,
		Counter:            c.Behavior.Counter,
		Bounce:             c.Behavior.Bounce,
		FastQuit:           c.Behavior.FastQuit,
		Tray:               c.Behavior.Tray,
		DisableDevTools:    c.Behavior.DisableDevTools,
		DisableContextMenu: c.Behavior.DisableContextMenu,
	}
}

// ApplyOptions writes opts back into the sections they came from.
func (c *Config) ApplyOptions(opts *entity.AppOptions) {
	c.App.Name = opts.Name
	c.App.Version = opts.Version
	c.App.TargetURL = opts.TargetURL
	c.App.InternalURLs = append([]string(nil), opts.InternalURLs...)

	c.Window.Width = opts.Width
	c.Window.Height = opts.Height
	c.Window.MinWidth = opts.MinWidth
	c.Window.MinHeight = opts.MinHeight
	c.Window.MaxWidth = opts.MaxWidth
	c.Window.MaxHeight = opts.MaxHeight
	c.Window.X = copyInt(opts.X)
	c.Window.Y = copyInt(opts.Y)
	c.Window.HideWindowFrame = opts.HideWindowFrame
	c.Window.ShowMenuBar = opts.ShowMenuBar
	c.Window.FullScreen = opts.FullScreen
	c.Window.AlwaysOnTop = opts.AlwaysOnTop
	c.Window.Maximize = opts.Maximize

	c.Behavior.Zoom = opts.Zoom
	c.Behavior.UserAgent = opts.UserAgent
	c.Behavior.Insecure = opts.Insecure
	c.Behavior.Counter = opts.Counter
	c.Behavior.Bounce = opts.Bounce
	c.Behavior.FastQuit = opts.FastQuit
	c.Behavior.Tray = opts.Tray
	c.Behavior.DisableDevTools = opts.DisableDevTools
	c.Behavior.DisableContextMenu = opts.DisableContextMenu
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
