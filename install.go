package main

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"text/template"

	"github.com/kardianos/osext"
)

const serviceFile = `
[Unit]
Description=Infrared Mode Controller
After=lircd.service

[Service]
ExecStart={{.BinPath}} run -c {{ .ConfigFile }}
Restart=on-failure

[Install]
WantedBy=multi-user.target
`

var serviceTmpl = template.Must(template.New("service").Parse(serviceFile))

// install copies the running binary under prefix, writes a systemd unit
// pointing at it and writes the default config unless one already exists or
// reset is set.
func install(prefix, configFile string, reset bool) error {
	if prefix == "" {
		prefix = "/"
	}
	self, err := osext.Executable()
	if err != nil {
		return err
	}

	binPath := filepath.Join(prefix, "usr/bin/irmode")
	if err := copyFile(self, binPath, 0755); err != nil {
		return err
	}

	unitPath := filepath.Join(prefix, "usr/lib/systemd/system/irmode.service")
	if err := writeUnit(unitPath, binPath, configFile); err != nil {
		return err
	}

	return writeDefaultConfig(filepath.Join(prefix, configFile), reset)
}

func copyFile(src, dst string, perm os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func writeUnit(path, binPath, configFile string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	err = serviceTmpl.Execute(f, struct{ BinPath, ConfigFile string }{binPath, configFile})
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

// writeDefaultConfig leaves an existing file alone unless reset is set.
func writeDefaultConfig(path string, reset bool) error {
	if _, err := os.Stat(path); err == nil && !reset {
		return nil
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(defaultConfigFile), 0644)
}
