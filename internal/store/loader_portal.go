package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"reflect"

	"github.com/MKhiriev/edsc-portals/internal/logger"
	"github.com/MKhiriev/edsc-portals/models"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// definitionFiles lists the accepted file names inside a portal directory.
var definitionFiles = []string{"config.json", "config.yaml", "config.yml"}

// LoadPortalRegistry reads every <portalId>/config.{json,yaml,yml} found at
// the root of fsys and returns the resulting registry. Directories without a
// definition file are skipped. A missing portalId is taken from the directory
// name.
func LoadPortalRegistry(fsys fs.FS, logger *logger.Logger) (PortalRegistry, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodingPortal, err)
	}

	portals := make(map[string]models.PortalConfig, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		dir := entry.Name()
		file, err := findDefinitionFile(fsys, dir)
		if err != nil {
			return nil, err
		}
		if file == "" {
			logger.Debug().Str("dir", dir).Msg("no portal definition in directory, skipping")
			continue
		}

		cfg, err := decodePortalFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("%w %s: %w", ErrDecodingPortal, file, err)
		}

		switch cfg.PortalID {
		case "":
			cfg.PortalID = dir
		case dir:
		default:
			return nil, fmt.Errorf("%w: %s declares portalId %q", ErrPortalIDMismatch, file, cfg.PortalID)
		}

		portals[dir] = cfg
		logger.Debug().Str("portal_id", dir).Str("file", file).Msg("portal definition loaded")
	}

	if len(portals) == 0 {
		return nil, ErrEmptyRegistry
	}

	return NewPortalRegistry(portals), nil
}

func findDefinitionFile(fsys fs.FS, dir string) (string, error) {
	var found string
	for _, name := range definitionFiles {
		candidate := path.Join(dir, name)
		_, err := fs.Stat(fsys, candidate)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("%w %s: %w", ErrDecodingPortal, candidate, err)
		}
		if found != "" {
			return "", fmt.Errorf("%w: %s and %s", ErrDuplicatePortalDefinition, found, candidate)
		}
		found = candidate
	}
	return found, nil
}

func decodePortalFile(fsys fs.FS, file string) (models.PortalConfig, error) {
	data, err := fs.ReadFile(fsys, file)
	if err != nil {
		return models.PortalConfig{}, err
	}

	if path.Ext(file) == ".json" {
		return decodePortalJSON(data)
	}
	return decodePortalYAML(data)
}

func decodePortalJSON(data []byte) (models.PortalConfig, error) {
	var cfg models.PortalConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return models.PortalConfig{}, err
	}
	return cfg, nil
}

func decodePortalYAML(data []byte) (models.PortalConfig, error) {
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), yaml.Parser()); err != nil {
		return models.PortalConfig{}, err
	}

	var cfg models.PortalConfig
	err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{
		Tag: "json",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook:       portalJSONHook(),
			Result:           &cfg,
			TagName:          "json",
			WeaklyTypedInput: true,
		},
	})
	if err != nil {
		return models.PortalConfig{}, err
	}
	return cfg, nil
}

// portalJSONHook decodes a YAML portal through its JSON form, so an explicit
// null or an empty map is kept the same way as in a JSON definition.
func portalJSONHook() mapstructure.DecodeHookFuncType {
	target := reflect.TypeFor[models.PortalConfig]()
	return func(from, to reflect.Type, data any) (any, error) {
		if to != target || from.Kind() != reflect.Map {
			return data, nil
		}

		raw, err := json.Marshal(data)
		if err != nil {
			return nil, err
		}
		return decodePortalJSON(raw)
	}
}
