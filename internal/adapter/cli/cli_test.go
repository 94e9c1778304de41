package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bill_ledger/internal/adapter/cli"
	"bill_ledger/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, dbPath string, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(append([]string{"--backend", "sqlite", "--sqlite-path", dbPath}, args...))
	err := cmd.Execute()
	return strings.TrimSpace(buf.String()), err
}

func TestBillCommands_Lifecycle(t *testing.T) {
	db := filepath.Join(t.TempDir(), "ledger.db")

	out, err := run(t, db, "exists", "b1")
	require.NoError(t, err)
	assert.Equal(t, "false", out)

	out, err = run(t, db, "issue", "b1", "x.com", "shop", "10.00")
	require.NoError(t, err)
	assert.Equal(t, `{"Domain":"shop","ID":"b1","Paid":false,"TransactionAmnt":"10.00","Website":"x.com"}`, out)

	_, err = run(t, db, "issue", "b1", "y.com", "shop", "1")
	require.ErrorIs(t, err, usecase.ErrBillAlreadyExists)

	out, err = run(t, db, "pay", "b1")
	require.NoError(t, err)
	assert.Equal(t, "bill b1 paid", out)

	_, err = run(t, db, "pay", "b1")
	require.ErrorIs(t, err, usecase.ErrBillAlreadyPaid)

	out, err = run(t, db, "read", "b1")
	require.NoError(t, err)
	assert.Contains(t, out, `"Paid":true`)

	out, err = run(t, db, "list", "--website", "x.com", "--paid")
	require.NoError(t, err)
	assert.Contains(t, out, `"ID":"b1"`)

	out, err = run(t, db, "list", "--website", "x.com")
	require.NoError(t, err)
	assert.Equal(t, "[]", out)

	out, err = run(t, db, "delete", "b1")
	require.NoError(t, err)
	assert.Equal(t, "bill b1 deleted", out)

	_, err = run(t, db, "read", "b1")
	require.ErrorIs(t, err, usecase.ErrBillNotFound)
}

func TestInvokeCommand(t *testing.T) {
	db := filepath.Join(t.TempDir(), "ledger.db")

	_, err := run(t, db, "invoke", "IssueBill", "b1", "x.com", "d", "3")
	require.NoError(t, err)

	out, err := run(t, db, "invoke", "GetAllBillsByWebsiteUnpaid", "x.com")
	require.NoError(t, err)
	assert.Contains(t, out, `"ID":"b1"`)

	_, err = run(t, db, "invoke", "Transfer")
	assert.Error(t, err)
}

func TestListCommand_RequiresWebsite(t *testing.T) {
	db := filepath.Join(t.TempDir(), "ledger.db")
	_, err := run(t, db, "list")
	assert.Error(t, err)
}

func TestUnknownBackend(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetArgs([]string{"--backend", "etcd", "exists", "b1"})
	assert.Error(t, cmd.Execute())
}

func runWithEnv(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := cli.NewRootCmdForTest()
	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return strings.TrimSpace(stdout.String()), stderr.String(), err
}

func TestDefaultBackendPersistsBetweenCommands(t *testing.T) {
	t.Setenv("WORLD_STATE_BACKEND", "")
	t.Setenv("SQLITE_PATH", filepath.Join(t.TempDir(), "default.db"))

	_, stderr, err := runWithEnv(t, "issue", "b1", "x.com", "shop", "1")
	require.NoError(t, err)
	assert.Empty(t, stderr)

	out, _, err := runWithEnv(t, "read", "b1")
	require.NoError(t, err)
	assert.Contains(t, out, `"ID":"b1"`)
}

func TestMemoryBackendWarns(t *testing.T) {
	_, stderr, err := runWithEnv(t, "--backend", "memory", "exists", "b1")
	require.NoError(t, err)
	assert.Contains(t, stderr, "memory backend keeps no state")

	t.Setenv("WORLD_STATE_BACKEND", "memory")
	_, stderr, err = runWithEnv(t, "exists", "b1")
	require.NoError(t, err)
	assert.Contains(t, stderr, "memory backend keeps no state")
}

func TestSeedCommand(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "ledger.db")
	seedPath := filepath.Join(dir, "bills.yaml")
	require.NoError(t, os.WriteFile(seedPath, []byte(`bills:
  - id: b1
    website: x.com
    domain: shop
    transaction_amnt: "10"
  - id: b2
    website: x.com
    domain: shop
    transaction_amnt: "20"
    paid: true
`), 0o644))

	out, err := run(t, db, "seed", "--file", seedPath)
	require.NoError(t, err)
	assert.Equal(t, "seeded 2 bills", out)

	out, err = run(t, db, "list", "--website", "x.com", "--paid")
	require.NoError(t, err)
	assert.Contains(t, out, `"ID":"b2"`)
	assert.NotContains(t, out, `"ID":"b1"`)
}

func TestSeedCommand_IsAllOrNothing(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "ledger.db")
	seedPath := filepath.Join(dir, "bills.yaml")
	require.NoError(t, os.WriteFile(seedPath, []byte(`bills:
  - {id: b1, website: x.com, domain: d, transaction_amnt: "1"}
  - {id: b1, website: x.com, domain: d, transaction_amnt: "2"}
`), 0o644))

	_, err := run(t, db, "seed", "--file", seedPath)
	require.ErrorIs(t, err, usecase.ErrBillAlreadyExists)

	out, err := run(t, db, "exists", "b1")
	require.NoError(t, err)
	assert.Equal(t, "false", out)
}

func TestLoadSeedFile_Invalid(t *testing.T) {
	dir := t.TempDir()

	_, err := cli.LoadSeedFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("bills:\n  - website: x.com\n"), 0o644))
	_, err = cli.LoadSeedFile(bad)
	assert.ErrorContains(t, err, "has no id")
}
