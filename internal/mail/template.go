// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"bytes"
	"html/template"

	"github.com/canonical/property-service/internal/types"
)

const welcomeSubject = "Welcome to PropertyPro!"

var welcomeTemplate = template.Must(template.New("welcome").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h1 style="color: #2563eb;">PropertyPro</h1>
  <h2>Welcome to PropertyPro, {{ .Name }}!</h2>
  <p>Your {{ .Role }} account has been successfully created and is ready to use.</p>
  <h3>What's next?</h3>
  <ul>
  {{- range .Steps }}
    <li>{{ . }}</li>
  {{- end }}
  </ul>
  {{- if .AppURL }}
  <p><a href="{{ .AppURL }}">Get Started</a></p>
  {{- end }}
  <p>Thank you for choosing PropertyPro for your property management needs.</p>
</div>
`))

var nextSteps = map[types.Role][]string{
	types.RoleLandlord: {
		"Add your properties to the platform",
		"Manage tenant applications",
		"Track rent payments and maintenance requests",
	},
	types.RoleTenant: {
		"Browse available properties",
		"Submit rental applications",
		"Pay rent online securely",
		"Request maintenance services",
	},
}

func renderWelcome(w Welcome, appURL string) (string, error) {
	name := w.Name
	if name == "" {
		name = w.Email
	}

	var buf bytes.Buffer
	err := welcomeTemplate.Execute(&buf, struct {
		Name   string
		Role   types.Role
		Steps  []string
		AppURL string
	}{name, w.Role, nextSteps[w.Role], appURL})

	return buf.String(), err
}
