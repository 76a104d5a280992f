package main

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path"

	c "gitea.cmcode.dev/cmcode/loan-wizard-tui/constants"
	m "gitea.cmcode.dev/cmcode/loan-wizard-tui/models"

	"github.com/adrg/xdg"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Attempts to load from a specific location, if possible.
//
// The first return value is the populated config, if one was found and parsed.
// The second return value is a string that indicates the properly loaded path
// that successfully loaded the config (if it didn't succeed, it will be an
// empty string). The third return value is an error, if present.
//
// The "t" parameter is the map of translations.
func loadConfFrom(file string, t map[string]string) (m.Config, string, error) {
	conf := m.Config{}

	b, err := os.ReadFile(file)
	if err != nil {
		return conf, "", fmt.Errorf("%v %v: %w", t["ConfigFailedToLoadConfig"], file, err)
	}

	err = yaml.Unmarshal(b, &conf)
	if err != nil {
		return conf, "", fmt.Errorf("%v %v: %w", t["ConfigFailedToUnmarshalConfig"], file, err)
	}

	return conf, file, nil
}

func loadConfFromEmbed(file string, emb embed.FS, t map[string]string) (m.Config, string, error) {
	conf := m.Config{}

	b, err := emb.ReadFile(file)
	if err != nil {
		return conf, "", fmt.Errorf("%v %v: %w", t["ConfigFailedToLoadEmbeddedConfig"], file, err)
	}

	err = yaml.Unmarshal(b, &conf)
	if err != nil {
		return conf, "", fmt.Errorf("%v %v: %w", t["ConfigFailedToUnmarshalEmbeddedConfig"], file, err)
	}

	return conf, file, nil
}

func fileExists(name string) (bool, error) {
	_, err := os.Stat(name)
	if err == nil {
		return true, nil
	}

	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}

	return false, err
}

// Attempts to load from the "file" path provided - if not successful,
// attempts to load from xdg config, then xdg home.
//
// The first return value is the populated config, if one was found and parsed.
// The second return value is a string that indicates the properly loaded path
// that successfully loaded the config (if it didn't succeed, it will be an
// empty string). The third return value is an error, if present.
//
// You should set the global configFile variable to match the returned string
// value so that other logic can use it.
//
// The "t" parameter is the map of translations.
func loadConfig(file string, t map[string]string, exampleConf embed.FS) (m.Config, string, error) {
	if file == "" {
		file = c.DefaultConfig
	}

	var err error

	var exists bool

	var conf m.Config

	// create the XDG config dir for this application once upon startup
	xdgConfigDir := path.Join(xdg.ConfigHome, c.DefaultConfigParentDir)

	err = os.MkdirAll(xdgConfigDir, 0o755)
	if err != nil {
		return conf, file, fmt.Errorf("failed to make all directories %v: %w ", xdgConfigDir, err)
	}

	exists, err = fileExists(file)
	if err != nil {
		return conf, file, fmt.Errorf("failed to check if file %v exists: %w ", file, err)
	}

	if exists {
		conf, file, err = loadConfFrom(file, t)
		if err != nil {
			return conf, file, fmt.Errorf("failed to load config from existing config file %v: %w ", file, err)
		}

		return conf, file, nil
	}

	xdgConfig := path.Join(xdgConfigDir, c.DefaultConfig)

	exists, err = fileExists(xdgConfig)
	if err != nil {
		return conf, file, fmt.Errorf("failed to check if file %v exists: %w ", file, err)
	}

	if exists {
		conf, file, err = loadConfFrom(xdgConfig, t)
		if err != nil {
			return conf, file, fmt.Errorf("failed to load config from existing config file %v: %w ", file, err)
		}

		return conf, file, nil
	}

	xdgHome := path.Join(xdg.Home, c.DefaultConfigParentDir, c.DefaultConfig)

	exists, err = fileExists(xdgHome)
	if err != nil {
		return conf, file, fmt.Errorf("failed to check if file %v exists: %w ", file, err)
	}

	if exists {
		conf, file, err = loadConfFrom(xdgHome, t)
		if err != nil {
			return conf, file, fmt.Errorf("failed to load config from existing config file %v: %w ", file, err)
		}

		return conf, file, nil
	}

	// if the config file doesn't exist, create it at xdgConfig with the
	// example config (note: this doesn't *write* to the xdgConfig path,
	// but instead sets the target config write path there so that it will
	// be saved there)
	conf, file, err = loadConfFromEmbed("example.yml", exampleConf, t)
	if err != nil {
		return conf, file, fmt.Errorf("failed to load config from template config %v: %w ", file, err)
	}

	return conf, xdgConfig, err
}

// processConfig applies any post-load configuration parameters/logic to ensure
// that data is valid & consistent. Use it after loadConfig.
func processConfig(conf *m.Config) {
	if len(conf.Drafts) == 0 {
		conf.Drafts = []m.Draft{{Name: LW.T["DefaultNewDraftName"]}}
	}

	for i := range conf.Drafts {
		if conf.Drafts[i].ID == "" {
			conf.Drafts[i].ID = uuid.NewString()
		}

		if conf.Drafts[i].General == nil {
			conf.Drafts[i].General = make(map[string]string)
		}
	}

	if conf.SubmitTimeoutSeconds <= 0 {
		conf.SubmitTimeoutSeconds = 30
	}

	if conf.UndoBufferMaxLength <= 0 {
		conf.UndoBufferMaxLength = 1000
	}
}
