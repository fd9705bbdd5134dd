package config

import (
	"errors"
	"io/fs"
	"strings"

	"gopkg.in/ini.v1"
)

type Store interface {
	LoadHosts() ([]*HostProfile, error)
	LoadCaseMap() (CaseMap, error)
}

type iniStore struct {
	HostsPath string
	UpperPath string
}

// LoadHosts 读取主机配置文件, 每个 section 是一个主机别名
// 文件不存在或无法解析时返回错误, 主机配置是必须的
func (s *iniStore) LoadHosts() ([]*HostProfile, error) {
	cfg, err := ini.Load(s.HostsPath)
	if err != nil {
		return nil, err
	}
	var hosts []*HostProfile
	for _, sec := range cfg.Sections() {
		if sec.Name() == ini.DefaultSection {
			continue
		}
		profile := NewHostProfile(sec.Name())
		for _, key := range sec.Keys() {
			// Value 取原始值, 避免 ini 库对 % 做展开
			profile.Set(key.Name(), key.Value())
		}
		hosts = append(hosts, profile)
	}
	return hosts, nil
}

// LoadCaseMap 读取键名大小写修正文件的 upper section
// 文件不存在时返回空表, 此时键名原样输出
func (s *iniStore) LoadCaseMap() (CaseMap, error) {
	cfg, err := ini.Load(s.UpperPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return CaseMap{}, nil
		}
		return nil, err
	}
	sec := cfg.Section("upper")
	caseMap := make(CaseMap, len(sec.Keys()))
	for _, key := range sec.Keys() {
		caseMap[strings.ToLower(key.Name())] = key.Value()
	}
	return caseMap, nil
}

func NewIniStore(hostsPath, upperPath string) Store {
	return &iniStore{
		HostsPath: hostsPath,
		UpperPath: upperPath,
	}
}
