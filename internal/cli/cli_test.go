package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/n0roo/opsdash/internal/catalog"
	"github.com/n0roo/opsdash/internal/classifier"
	"github.com/n0roo/opsdash/internal/config"
	"github.com/n0roo/opsdash/internal/insight"
)

func resetFlags() {
	configPath, catalogPath, dbPath = "", "", ""
	verbose, jsonOut = false, false
	dashboardFlag, titleFlag, valueFlag = "", "", ""
	plainOut = false
	initForce, exportOutput, migrateForce = false, "", false
	tuiWatch, tuiDashboard, tuiPlain = false, "", false
	logger, cfg, projectRoot = nil, nil, ""
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags()
	t.Cleanup(resetFlags)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestClassify(t *testing.T) {
	out, err := run(t, "classify", "Needs Repair", "--dashboard", "biomedical")
	require.NoError(t, err)
	assert.Equal(t, "maintenance\n", out)
}

func TestClassifyJSON(t *testing.T) {
	out, err := run(t, "classify", "Lost Repair Tickets", "-d", "biomedical", "--json")
	require.NoError(t, err)

	var got struct {
		Kind      insight.Kind `json:"kind"`
		RuleIndex int          `json:"rule_index"`
		Defaulted bool         `json:"defaulted"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, insight.KindLost, got.Kind)
	assert.Equal(t, 0, got.RuleIndex)
	assert.False(t, got.Defaulted)
}

func TestClassifyUnknownDashboard(t *testing.T) {
	_, err := run(t, "classify", "Needs Repair", "-d", "radiology")
	assert.ErrorIs(t, err, classifier.ErrUnknownDashboard)
}

func TestInspectEmptyItems(t *testing.T) {
	out, err := run(t, "inspect", "Response Time", "-d", "transfusion", "--value", "7 min", "--plain")
	require.NoError(t, err)

	assert.Contains(t, out, "# Response Time: 7 min")
	assert.Contains(t, out, "## Affected Blood Units")
	assert.Contains(t, out, insight.NoAnomaliesText)
}

func TestInspectJSON(t *testing.T) {
	out, err := run(t, "inspect", "Needs Repair", "-d", "biomedical", "--json")
	require.NoError(t, err)

	var p insight.Payload
	require.NoError(t, json.Unmarshal([]byte(out), &p))
	assert.Equal(t, insight.KindMaintenance, p.Kind)
	assert.Len(t, p.AffectedItems, 5)
	assert.Equal(t, "Approve overtime for 2 technicians this weekend", p.RecommendedAction)
}

func TestResolveFallback(t *testing.T) {
	out, err := run(t, "resolve", "hvac", "--plain")
	require.NoError(t, err)
	assert.Contains(t, out, "deviation from standard operating procedure")
	assert.Contains(t, out, "## Affected Infrastructure")
}

func TestResolveUnknownKind(t *testing.T) {
	_, err := run(t, "resolve", "weather")
	assert.Error(t, err)
}

func TestKinds(t *testing.T) {
	out, err := run(t, "kinds", "--json")
	require.NoError(t, err)

	var list []kindInfo
	require.NoError(t, json.Unmarshal([]byte(out), &list))
	assert.Len(t, list, len(insight.Kinds()))

	authored := map[insight.Kind]bool{}
	for _, k := range list {
		authored[k.Kind] = k.Authored
	}
	assert.False(t, authored[insight.KindHVAC])
	assert.True(t, authored[insight.KindMaintenance])
}

func TestCatalogInitThenYAMLSource(t *testing.T) {
	root := t.TempDir()
	cfgFile := config.ConfigPath(root)

	_, err := run(t, "catalog", "init", "--config", cfgFile)
	require.NoError(t, err)
	assert.FileExists(t, cfgFile)
	assert.FileExists(t, config.DefaultCatalogPath(root))

	_, err = run(t, "catalog", "init", "--config", cfgFile)
	assert.Error(t, err, "init twice without --force")

	// edit the catalog file and classify through it
	c, err := catalog.Load(config.DefaultCatalogPath(root))
	require.NoError(t, err)
	bio := c.Boards[classifier.DashboardBiomedical]
	bio.Rules = append([]classifier.Rule{{Match: "Needs", Kind: insight.KindRecall}}, bio.Rules...)
	require.NoError(t, catalog.Save(config.DefaultCatalogPath(root), c))

	out, err := run(t, "classify", "Needs Repair", "-d", "biomedical", "--config", cfgFile)
	require.NoError(t, err)
	assert.Equal(t, "recall\n", out)
}

func TestCatalogValidateFiles(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, catalog.Save(good, catalog.Default()))

	broken := catalog.Default()
	broken.Insights[insight.Kind("bogus")] = insight.Entry{Narrative: "x", RecommendedAction: "y"}
	require.NoError(t, catalog.Save(bad, broken))

	out, err := run(t, "catalog", "validate", good)
	require.NoError(t, err)
	assert.Contains(t, out, "✅ "+good)

	out, err = run(t, "catalog", "validate", good, bad, "--json")
	require.Error(t, err)

	var results []validation
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 2)
	assert.True(t, results[0].Valid)
	assert.False(t, results[1].Valid)
}

func TestCatalogValidateMissingFile(t *testing.T) {
	_, err := run(t, "catalog", "validate", filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestCatalogImportAndReadFromDB(t *testing.T) {
	dbFile := filepath.Join(t.TempDir(), "catalog.db")

	_, err := run(t, "catalog", "import", "--db", dbFile)
	require.NoError(t, err)
	assert.FileExists(t, dbFile)

	out, err := run(t, "classify", "Needs Repair", "-d", "biomedical", "--db", dbFile)
	require.NoError(t, err)
	assert.Equal(t, "maintenance\n", out)

	exported := filepath.Join(t.TempDir(), "exported.yaml")
	_, err = run(t, "catalog", "export", "--db", dbFile, "-o", exported)
	require.NoError(t, err)

	got, err := catalog.Load(exported)
	require.NoError(t, err)
	assert.Equal(t, len(catalog.Default().Insights), len(got.Insights))
}

func TestReadMissingDB(t *testing.T) {
	_, err := run(t, "classify", "x", "-d", "biomedical", "--db", filepath.Join(t.TempDir(), "none.db"))
	assert.Error(t, err)
}

func TestCatalogExportYAML(t *testing.T) {
	out, err := run(t, "catalog", "export")
	require.NoError(t, err)

	c, err := catalog.Parse([]byte(out))
	require.NoError(t, err)
	assert.Len(t, c.Boards, len(classifier.Dashboards()))
}

func TestVersionJSON(t *testing.T) {
	out, err := run(t, "version", "--json")
	require.NoError(t, err)

	var info map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, Version, info["version"])
	assert.Equal(t, catalog.CurrentVersion, info["catalog"])
}

func TestBadConfig(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, config.EnsureDir(root))
	require.NoError(t, os.WriteFile(config.ConfigPath(root), []byte("catalog:\n  source: ftp\n"), 0644))

	_, err := run(t, "kinds", "--config", config.ConfigPath(root))
	assert.Error(t, err)
}

func TestInspectRejectsBlankInsightCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	c := catalog.Default()
	c.Insights[insight.KindMaintenance] = insight.Entry{Narrative: "Repairs are backing up"}
	require.NoError(t, catalog.Save(path, c))

	_, err := run(t, "inspect", "Needs Repair", "-d", "biomedical", "--catalog", path)
	assert.Error(t, err)
}
