package config

import (
	"github.com/tq-lab/maturika/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// Admin holds CLI flags for the admin credential pair. The password
// field carries the masq secret tag so startup logging never prints it.
type Admin struct {
	Username string `masq:"secret"`
	Password string `masq:"secret"`
}

// Flags returns CLI flags for admin configuration
func (a *Admin) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "admin-username",
			Usage:       "Admin username (admin surface disabled when empty)",
			Sources:     cli.EnvVars("MATURIKA_ADMIN_USERNAME"),
			Destination: &a.Username,
		},
		&cli.StringFlag{
			Name:        "admin-password",
			Usage:       "Admin password (admin surface disabled when empty)",
			Sources:     cli.EnvVars("MATURIKA_ADMIN_PASSWORD"),
			Destination: &a.Password,
		},
	}
}

// Enabled reports whether both credentials are set
func (a *Admin) Enabled() bool {
	return a.Username != "" && a.Password != ""
}

// Configure returns the admin gate backed by the configured credential
// pair. The gate rejects everything while either credential is empty.
func (a *Admin) Configure() usecase.AdminGate {
	return usecase.NewStaticCredentials(a.Username, a.Password)
}
