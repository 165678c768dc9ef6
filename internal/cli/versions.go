package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/skelly-dev/javadoclink/internal/output"
	"github.com/skelly-dev/javadoclink/pkg/javadoclink"
)

// sampleParams shows how a version renders "(int[], String)".
var sampleParams = []javadoclink.Param{{Name: "int", Dims: 1}, {Name: "java.lang.String"}}

// VersionInfo describes the link layout of one javadoc version.
type VersionInfo struct {
	Version string `json:"version" yaml:"version"`
	Lineage string `json:"lineage" yaml:"lineage"`
	Modules bool   `json:"modules" yaml:"modules"`
	Params  string `json:"params" yaml:"params"`
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`
}

type VersionInfos []VersionInfo

func (v VersionInfos) TableData() output.Data {
	data := output.Data{Headers: []string{"version", "lineage", "modules", "params", "base url"}}
	for _, info := range v {
		data.Rows = append(data.Rows, []string{
			info.Version,
			info.Lineage,
			strconv.FormatBool(info.Modules),
			info.Params,
			info.BaseURL,
		})
	}
	return data
}

func RunVersions(cmd *cobra.Command, _ []string) error {
	a := appFrom(cmd)
	infos := make(VersionInfos, 0)
	for _, version := range javadoclink.SupportedVersions() {
		link := javadoclink.MustForVersion(version)
		infos = append(infos, VersionInfo{
			Version: version,
			Lineage: link.Lineage(),
			Modules: link.SupportsModules(),
			Params:  link.Params().Join(sampleParams, false),
			BaseURL: a.cfg.BaseURLFor(version),
		})
	}
	return a.write(cmd.OutOrStdout(), infos)
}
