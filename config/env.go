package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/slighter12/go-lib/database/postgres"
)

// canonicalizeEnvKey maps an env var name onto the key spelling used in the yaml file, so
// POSTGRES_MASTER_USERNAME becomes postgres.master.userName. Segments below an unknown key stay lower case.
func canonicalizeEnvKey(envKey string, fileKeys map[string]any) string {
	var path []string
	level := fileKeys

	for _, segment := range strings.Split(strings.ToLower(envKey), "_") {
		if segment == "" {
			continue
		}

		key, child := matchKey(level, segment)
		path = append(path, key)
		level = child
	}

	return strings.Join(path, ".")
}

// matchKey returns the file key equal to segment ignoring case and separators, with its children.
func matchKey(level map[string]any, segment string) (string, map[string]any) {
	for key, value := range level {
		if foldKey(key) == segment {
			child, _ := value.(map[string]any)

			return key, child
		}
	}

	return segment, nil
}

func foldKey(key string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return -1
		}
	}, key)
}

// replicasFromEnv reads POSTGRES_REPLICAS_<n>_{HOST,PORT,USERNAME,PASSWORD} for n = 0, 1, ...
// until a replica without host or port.
func replicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for n := 0; ; n++ {
		lookup := func(field string) string {
			return os.Getenv("POSTGRES_REPLICAS_" + strconv.Itoa(n) + "_" + field)
		}

		host, port := lookup("HOST"), lookup("PORT")
		if host == "" || port == "" {
			return replicas
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: lookup("USERNAME"),
			Password: lookup("PASSWORD"),
		})
	}
}
