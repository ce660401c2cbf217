package configuration

import (
	"fmt"

	"github.com/joho/godotenv"
)

// GodotenvProvider is an implementation wrapping the Gotdotenv framework.
type GodotenvProvider struct{}

// Read reads generic Unix-type configuration files into a map (map[key]value).
// Later files override earlier ones.
func (*GodotenvProvider) Read(filenames ...string) (map[string]string, error) {
	data := map[string]string{}

	for _, filename := range filenames {
		fileData, err := godotenv.Read(filename)
		if err != nil {
			return nil, fmt.Errorf("(config-godotenv) %s: %w", filename, err)
		}

		for key, value := range fileData {
			data[key] = value
		}
	}

	return data, nil
}
