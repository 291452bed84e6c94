package handlers

import (
	"fmt"
	"os"
	"sort"

	"github.com/charmbracelet/huh"

	"github.com/skiffhq/skiff/internal/config"
	"github.com/skiffhq/skiff/internal/errdefs"
)

// initAnswers holds the wizard answers for one init run.
type initAnswers struct {
	App        string
	Image      string
	Region     string
	ServerType string
	Domain     string
	Tunnel     bool
}

// runInitWizard collects the answers interactively (replaced in tests).
var runInitWizard = func(answers *initAnswers) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Application name").
				Description("Lowercase DNS label; roots every resource name").
				Placeholder("my-app").
				Value(&answers.App).
				Validate(validateAppName),
			huh.NewInput().
				Title("Container image").
				Placeholder("ghcr.io/acme/my-app").
				Value(&answers.Image),
			huh.NewSelect[string]().
				Title("Region").
				Options(regionOptions()...).
				Value(&answers.Region),
			huh.NewSelect[string]().
				Title("Server type").
				Options(huh.NewOptions("cpx11", "cpx21", "cpx31", "cax11", "cax21")...).
				Value(&answers.ServerType),
			huh.NewInput().
				Title("Domain (optional)").
				Placeholder("app.example.com").
				Value(&answers.Domain),
			huh.NewConfirm().
				Title("Expose the app through an ingress tunnel?").
				Value(&answers.Tunnel),
		).Title("New skiff project"),
	).Run()
}

// configTemplate keeps the generated file human-editable: secrets stay as
// ${VAR} references, resolved from the environment at load time.
const configTemplate = `app: %s
image: %s
token: ${HCLOUD_TOKEN}
region: %s
server_type: %s
`

// Init creates a skiff.yml through the interactive wizard. It refuses to
// overwrite an existing file.
func Init(path string) error {
	if path == "" {
		path = config.DefaultFileName
	}
	if _, err := os.Stat(path); err == nil {
		return &errdefs.ConfigError{Reason: path + " already exists"}
	}

	answers := initAnswers{Region: "nbg1", ServerType: "cpx11"}
	if err := runInitWizard(&answers); err != nil {
		return err
	}

	body := fmt.Sprintf(configTemplate, answers.App, answers.Image, answers.Region, answers.ServerType)
	if answers.Domain != "" {
		body += fmt.Sprintf("domain: %s\n", answers.Domain)
	}
	if answers.Tunnel {
		body += "tunnel:\n  enabled: true\n  token: ${TUNNEL_TOKEN}\n"
	}

	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		return &errdefs.ConfigError{Reason: "failed to write " + path, Err: err}
	}

	fmt.Fprintf(stdout, "Created %s\n", path)
	return nil
}

func validateAppName(s string) error {
	probe := config.Config{App: s, Image: "x", Token: "x", Region: "nbg1"}
	if err := probe.Validate(); err != nil {
		return fmt.Errorf("must be a lowercase DNS label")
	}
	return nil
}

func regionOptions() []huh.Option[string] {
	regions := make([]string, 0, len(config.ValidRegions))
	for region := range config.ValidRegions {
		regions = append(regions, region)
	}
	sort.Strings(regions)

	options := make([]huh.Option[string], 0, len(regions))
	for _, region := range regions {
		options = append(options, huh.NewOption(region, region))
	}
	return options
}
