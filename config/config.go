// Copyright (C) 2026 The MyPod Authors.
//
// This file is part of MyPod.
//
// MyPod is free software: you can redistribute it and/or modify it under the
// terms of the GNU Affero General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.
//
// MyPod is distributed in the hope that it will be useful, but WITHOUT ANY
// WARRANTY; without even the implied warranty of MERCHANTABILITY or FITNESS
// FOR A PARTICULAR PURPOSE.  See the GNU Affero General Public License for
// more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with MyPod.  If not, see <https://www.gnu.org/licenses/>.

package config

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"mypod"

	"github.com/spf13/viper"
)

type DatabaseConfig struct {
	Driver  string
	Source  string
	LogMode bool
}

type ClientConfig struct {
	CacheDir  string
	MaxAge    time.Duration
	UseCache  bool
	UserAgent string
}

type ITunesConfig struct {
	URL    string
	Entity string
	Limit  int
}

type LibraryConfig struct {
	DB          DatabaseConfig
	SearchTerms []string
	CoverArt    bool
}

type Config struct {
	Client  ClientConfig
	DataDir string
	ITunes  ITunesConfig
	Library LibraryConfig
}

func configDefaults(v *viper.Viper) {
	v.SetDefault("Client.CacheDir", ".httpcache")
	v.SetDefault("Client.MaxAge", "720h") // 30 days in hours
	v.SetDefault("Client.UseCache", "false")
	v.SetDefault("Client.UserAgent", userAgent())

	v.SetDefault("DataDir", ".")

	v.SetDefault("ITunes.URL", "https://itunes.apple.com/search")
	v.SetDefault("ITunes.Entity", "song")
	v.SetDefault("ITunes.Limit", "50")

	v.SetDefault("Library.DB.Driver", "sqlite3")
	v.SetDefault("Library.DB.Source", "mypod.db")
	v.SetDefault("Library.DB.LogMode", "false")
	v.SetDefault("Library.CoverArt", "true")
	v.SetDefault("Library.SearchTerms", []string{
		"the war on drugs",
		"refused",
		"thrice",
		"16 horsepower",
		"viagra boys",
		"geese",
		"ghost",
		"run the jewels",
		"rammstein",
		"salvatore ganacci",
		"baroness",
	})
}

func userAgent() string {
	return mypod.AppName + "/" + mypod.Version + " ( " + mypod.Contact + " ) "
}

func readConfig(v *viper.Viper) (*Config, error) {
	var config Config
	var pathRegexp = regexp.MustCompile(`(file|dir|source)$`)
	err := v.ReadInConfig()
	dir := filepath.Dir(v.ConfigFileUsed())
	for _, k := range v.AllKeys() {
		if pathRegexp.MatchString(k) {
			val := v.Get(k)
			if strings.HasPrefix(val.(string), "/") == false {
				val = fmt.Sprintf("%s/%s", dir, val.(string))
				v.Set(k, val)
			}
		}
	}
	if err == nil {
		err = v.Unmarshal(&config)
	}
	return &config, err
}

// TestConfig is a config with defaults only, databases and caches placed in
// dir. No config file is read.
func TestConfig(dir string) (*Config, error) {
	v := viper.New()
	configDefaults(v)
	v.SetDefault("Library.DB.Source", filepath.Join(dir, "mypod.db"))
	v.SetDefault("Client.CacheDir", filepath.Join(dir, ".httpcache"))
	var config Config
	err := v.Unmarshal(&config)
	return &config, err
}

var configFile, configPath, configName string

func SetConfigFile(path string) {
	configFile = path
}

func AddConfigPath(path string) {
	configPath = path
}

func SetConfigName(name string) {
	configName = name
}

func GetConfig() (*Config, error) {
	v := viper.New()
	if configFile != "" {
		v.SetConfigFile(configFile)
	}
	if configPath != "" {
		v.AddConfigPath(configPath)
	}
	if configName != "" {
		v.SetConfigName(configName)
	}
	configDefaults(v)
	return readConfig(v)
}

func LoadConfig(dir string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(dir)
	configDefaults(v)
	return readConfig(v)
}
