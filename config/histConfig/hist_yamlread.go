package histConfig

import (
	"fmt"
	"os"
	"strings"
	"sync/atomic"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"histStat/histogram/axis"
	"histStat/histogram/breaks"
	"histStat/infra/errorx"
	"histStat/infra/errorx/errCode"
	"histStat/infra/observe/log/staticLog"
)

// 轴类型
const (
	KindIntegral  = "integral"
	KindRegular   = "regular"
	KindTransform = "transform"
	KindVariable  = "variable"
	KindCategory  = "category"
)

type Config struct {
	Log        staticLog.Config `yaml:"log"`
	Histograms []Spec           `yaml:"histograms"`
}

// Spec describes one histogram. Bins == 0 means "size with Breaks"; a nil
// Low/High is taken from the sample.
type Spec struct {
	Name         string    `yaml:"name"`
	Axis         string    `yaml:"axis"`
	Bins         int       `yaml:"bins"`
	Breaks       string    `yaml:"breaks"`
	Low          *float64  `yaml:"low"`
	High         *float64  `yaml:"high"`
	Edges        []float64 `yaml:"edges"`
	Categories   []string  `yaml:"categories"`
	Transform    string    `yaml:"transform"`
	axis.Options `yaml:",inline"`
}

// 用 atomic.Value 存当前配置，支持热更新时无锁读取
var cfgValue atomic.Value // stores *Config

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read yaml: %w", err)
	}
	return Parse(b)
}

func Parse(b []byte) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("unmarshal yaml: %w", err)
	}

	// 规范化：name 去空格, axis/breaks/transform 小写
	for i := range c.Histograms {
		s := &c.Histograms[i]
		s.Name = strings.TrimSpace(s.Name)
		s.Axis = strings.ToLower(strings.TrimSpace(s.Axis))
		s.Breaks = strings.ToLower(strings.TrimSpace(s.Breaks))
		s.Transform = strings.ToLower(strings.TrimSpace(s.Transform))
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate reports every invalid spec at once.
func (c *Config) Validate() error {
	var err error
	if len(c.Histograms) == 0 {
		err = multierr.Append(err, errorx.New(errCode.EMPTY_VALUE, "no histograms configured"))
	}
	seen := make(map[string]bool, len(c.Histograms))
	for i, s := range c.Histograms {
		if s.Name == "" {
			err = multierr.Append(err, errorx.Newf(errCode.INVALID_VALUE, "histograms[%d]: name is required", i))
		} else if seen[s.Name] {
			err = multierr.Append(err, errorx.Newf(errCode.INVALID_VALUE, "histograms[%d]: duplicate name %q", i, s.Name))
		}
		seen[s.Name] = true
		err = multierr.Append(err, s.Validate())
	}
	return err
}

func (s Spec) Validate() error {
	var err error
	fail := func(format string, args ...any) {
		err = multierr.Append(err, errorx.Newf(errCode.INVALID_VALUE, "%s: "+format, append([]any{s.Name}, args...)...))
	}

	if s.Bins < 0 {
		fail("bins must be >= 0, got %d", s.Bins)
	}
	needsBins := s.Axis == KindIntegral || s.Axis == KindRegular || s.Axis == KindTransform
	if needsBins && s.Bins == 0 {
		if s.Breaks == "" {
			fail("either bins or breaks is required")
		} else if _, e := breaks.ByName(s.Breaks); e != nil {
			fail("%v", e)
		}
	}

	switch s.Axis {
	case KindIntegral:
	case KindRegular, KindTransform:
		if s.Low != nil && s.High != nil && !(*s.High > *s.Low) {
			fail("low %v must be below high %v", *s.Low, *s.High)
		}
		if s.Axis == KindTransform {
			if _, e := axis.LookupTransform[float64](s.Transform); e != nil {
				fail("%v", e)
			}
		}
	case KindVariable:
		if len(s.Edges) < 2 {
			fail("variable axis needs at least 2 edges")
		}
		for i := 1; i < len(s.Edges); i++ {
			if !(s.Edges[i] > s.Edges[i-1]) {
				fail("edges must be strictly increasing")
				break
			}
		}
	case KindCategory:
		if len(s.Categories) == 0 {
			fail("category axis needs categories")
		}
		dup := make(map[string]bool, len(s.Categories))
		for _, c := range s.Categories {
			if dup[c] {
				fail("duplicate category %q", c)
			}
			dup[c] = true
		}
	default:
		fail("unknown axis %q", s.Axis)
	}
	return err
}

func Init(path string) error {
	c, err := Load(path)
	if err != nil {
		return err
	}
	cfgValue.Store(c)
	return nil
}

// Get O(1) 读取当前配置, 未初始化时返回 nil
func Get() *Config {
	cAny := cfgValue.Load()
	if cAny == nil {
		return nil
	}
	return cAny.(*Config)
}

// Lookup 按名称查找 histogram 配置
func (c *Config) Lookup(name string) (Spec, bool) {
	name = strings.TrimSpace(name)
	for _, s := range c.Histograms {
		if s.Name == name {
			return s, true
		}
	}
	return Spec{}, false
}
