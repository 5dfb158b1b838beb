package main

import (
	"io/ioutil"

	"github.com/ztrue/tracerr"
	"gopkg.in/yaml.v2"
)

const ModuleInfoFile = "tawast.yaml"

type moduleInfo struct {
	Package string `yaml:"Package"`
	Target  string `yaml:"Target,omitempty"`
}

func writeModuleInfo(path string, info moduleInfo) error {
	out, err := yaml.Marshal(info)
	if err != nil {
		return tracerr.Wrap(err)
	}

	return tracerr.Wrap(ioutil.WriteFile(path, out, 0644))
}

func readModuleInfo(path string) (moduleInfo, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return moduleInfo{}, tracerr.Errorf("reading module information: %v", err)
	}

	var info moduleInfo
	if err := yaml.Unmarshal(data, &info); err != nil {
		return moduleInfo{}, tracerr.Errorf("reading module information: %v", err)
	}
	if info.Package == "" {
		return moduleInfo{}, tracerr.Errorf("%s: Package is empty", path)
	}
	return info, nil
}
