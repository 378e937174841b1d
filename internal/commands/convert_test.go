package commands_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/sietosru/internal/runlog"
)

func TestConvert_WritesFiles(t *testing.T) {
	dir := t.TempDir()
	out, err := runSietosru(t, dir, "convert", fixturePath(t), "11122", "Stockholm", "--out", dir)
	require.NoError(t, err, out)

	info, err := os.ReadFile(filepath.Join(dir, "2023", "INFO.sru"))
	require.NoError(t, err)
	assert.Contains(t, string(info), "#ORGNR 165566778899\r\n")
	assert.Contains(t, string(info), "#POSTNR 11122\r\n")
	assert.Contains(t, string(info), "#POSTORT Stockholm\r\n")
	// Latin-1 on disk.
	assert.Contains(t, string(info), "#NAMN Exempel \xc5keri AB\r\n")

	forms, err := os.ReadFile(filepath.Join(dir, "2023", "BLANKETTER.sru"))
	require.NoError(t, err)
	text := string(forms)
	assert.True(t, strings.HasPrefix(text, "#BLANKETT INK2-2017P4\r\n"))
	assert.True(t, strings.HasSuffix(text, "#BLANKETTSLUT\r\n#FIL_SLUT"))
	assert.Contains(t, text, "#UPPGIFT 7104 43235\r\n")
	assert.Contains(t, text, "#UPPGIFT 7450 37225\r\n")
	assert.Contains(t, text, "#UPPGIFT 7515 1766\r\n")
	assert.Contains(t, text, "#UPPGIFT 7670 43235\r\n")
	assert.Contains(t, text, "#UPPGIFT 8045 X\r\n")

	// Echo goes to stdout.
	assert.Contains(t, out, "#DATABESKRIVNING_START")
	assert.Contains(t, out, "#FIL_SLUT")
}

func TestConvert_WritesLog(t *testing.T) {
	dir := t.TempDir()
	_, err := runSietosru(t, dir, "convert", fixturePath(t), "11122", "Stockholm", "--out", dir, "--quiet")
	require.NoError(t, err)

	entries, err := runlog.Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "165566778899", entries[0].OrgNr)
	assert.Equal(t, "2023", entries[0].FiscalYear)
	assert.Equal(t, []string{"INK2-2017P4", "INK2R-2017P4", "INK2S-2014P4"}, entries[0].Forms)
	assert.Equal(t, filepath.Join(dir, "2023"), entries[0].OutputDir)
}

func TestConvert_DryRun(t *testing.T) {
	dir := t.TempDir()
	out, err := runSietosru(t, dir, "convert", fixturePath(t), "11122", "Stockholm", "--out", dir, "--dry-run")
	require.NoError(t, err, out)

	assert.Contains(t, out, "#BLANKETT INK2S-2014P4")
	_, err = os.Stat(filepath.Join(dir, "2023"))
	assert.True(t, os.IsNotExist(err), "dry run must not write files")
}

func TestConvert_PostalFromConfig(t *testing.T) {
	dir := t.TempDir()
	_, err := runSietosru(t, dir, "init", "--postal-code", "411 01", "--postal-address", "Göteborg")
	require.NoError(t, err)

	out, err := runSietosru(t, dir, "convert", fixturePath(t), "--quiet")
	require.NoError(t, err, out)

	info, err := os.ReadFile(filepath.Join(dir, "2023", "INFO.sru"))
	require.NoError(t, err)
	assert.Contains(t, string(info), "#POSTNR 41101\r\n")
	assert.Contains(t, string(info), "#POSTORT G\xf6teborg\r\n")
}

func TestConvert_LineEndingLF(t *testing.T) {
	dir := t.TempDir()
	cfg := "output:\n  line_ending: lf\n  log: false\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "custom.yaml"), []byte(cfg), 0o644))

	_, err := runSietosru(t, dir, "convert", fixturePath(t), "11122", "Stockholm", "--config", "custom.yaml", "--quiet")
	require.NoError(t, err)

	forms, err := os.ReadFile(filepath.Join(dir, "2023", "BLANKETTER.sru"))
	require.NoError(t, err)
	assert.NotContains(t, string(forms), "\r")

	_, err = os.Stat(filepath.Join(dir, runlog.FileName))
	assert.True(t, os.IsNotExist(err), "log disabled in config")
}

func TestConvert_RequiresPostalCode(t *testing.T) {
	dir := t.TempDir()
	out, err := runSietosru(t, dir, "convert", fixturePath(t))
	require.Error(t, err)
	assert.Contains(t, out, "Error: postal code required")
	assert.Equal(t, 1, strings.Count(out, "Error:"), "error printed once")
}

func TestConvert_InvalidPostalCode(t *testing.T) {
	dir := t.TempDir()
	out, err := runSietosru(t, dir, "convert", fixturePath(t), "abc", "Stockholm")
	require.Error(t, err)
	assert.Contains(t, out, `invalid postal code "abc"`)
}

func TestConvert_MissingResultWritesNothing(t *testing.T) {
	dir := t.TempDir()
	sie := strings.Join([]string{
		`#FNAMN "Test AB"`,
		"#ORGNR 5566778899",
		"#RAR 0 20230101 20231231",
		`#KONTO 1930 "Bank"`,
		"#SRU 1930 7281",
		"#UB 0 1930 100.00",
	}, "\r\n")
	path := filepath.Join(dir, "nores.se")
	require.NoError(t, os.WriteFile(path, []byte(sie), 0o644))

	out, err := runSietosru(t, dir, "convert", path, "11122", "Stockholm")
	require.Error(t, err)
	assert.Contains(t, out, "7450")

	_, err = os.Stat(filepath.Join(dir, "2023"))
	assert.True(t, os.IsNotExist(err))
}

func TestConvert_ExplicitConfigMissing(t *testing.T) {
	dir := t.TempDir()
	_, err := runSietosru(t, dir, "convert", fixturePath(t), "11122", "Stockholm", "--config", "nope.yaml")
	require.Error(t, err)
}

func TestConvert_FileNotFound(t *testing.T) {
	dir := t.TempDir()
	out, err := runSietosru(t, dir, "convert", filepath.Join(dir, "missing.se"), "11122", "Stockholm")
	require.Error(t, err)
	assert.Contains(t, out, "opening SIE file")
}

func TestConvert_VerboseLogsBytesWritten(t *testing.T) {
	dir := t.TempDir()
	out, err := runSietosru(t, dir, "convert", fixturePath(t), "11122", "Stockholm", "--quiet", "--verbose")
	require.NoError(t, err, out)

	info, err := os.ReadFile(filepath.Join(dir, "2023", "INFO.sru"))
	require.NoError(t, err)
	forms, err := os.ReadFile(filepath.Join(dir, "2023", "BLANKETTER.sru"))
	require.NoError(t, err)

	assert.Contains(t, out, `msg="wrote submission"`)
	assert.Contains(t, out, fmt.Sprintf("bytes=%d", len(info)+len(forms)))
}

func TestConvert_ProgramIsSingleValue(t *testing.T) {
	dir := t.TempDir()
	_, err := runSietosru(t, dir, "convert", fixturePath(t), "11122", "Stockholm", "--quiet")
	require.NoError(t, err)

	info, err := os.ReadFile(filepath.Join(dir, "2023", "INFO.sru"))
	require.NoError(t, err)
	assert.Contains(t, string(info), "\r\n#PROGRAM SIEtoSRU\r\n")
}
