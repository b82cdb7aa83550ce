package main

import (
	"encoding/json"
	"testing"

	"logdeck/internal/logs"
	"logdeck/internal/testsupport"
)

func TestTailReportsNewLines(t *testing.T) {
	env := setupCLITestEnv(t)
	logPath := testsupport.WriteLog(t, env.baseDir, "app.log",
		"2024-12-10 08:00:01 INFO one",
		"2024-12-10 08:00:02 INFO two",
		"2024-12-10 08:00:03 INFO three",
	)

	out, _, err := runCLI(t, env, "tail", logPath, "--last", "1")
	if err != nil {
		t.Fatalf("tail: %v", err)
	}
	requireContains(t, out, "two")
	requireContains(t, out, "three")
	requireContains(t, out, "2 new of 3 total lines; next cursor 3")

	testsupport.AppendLog(t, logPath, "2024-12-10 08:00:04 ERROR four")

	out, _, err = runCLI(t, env, "tail", logPath, "--last", "3", "--json")
	if err != nil {
		t.Fatalf("tail --json: %v", err)
	}
	var result logs.TailResult
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if result.NewCount != 1 || result.TotalLines != 4 {
		t.Fatalf("result = %+v", result)
	}
	if len(result.Entries) != 1 || result.Entries[0].Message != "four" {
		t.Fatalf("entries = %+v", result.Entries)
	}
}

func TestTailCountOnly(t *testing.T) {
	env := setupCLITestEnv(t)
	logPath := testsupport.WriteLog(t, env.baseDir, "app.log", "one", "two")

	out, _, err := runCLI(t, env, "tail", logPath, "--count-only", "--json")
	if err != nil {
		t.Fatalf("tail --count-only: %v", err)
	}
	var result logs.TailResult
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if result.NewCount != 2 || result.TotalLines != 2 || result.Entries != nil {
		t.Fatalf("result = %+v", result)
	}
}

func TestTailUnchangedFileYieldsZero(t *testing.T) {
	env := setupCLITestEnv(t)
	logPath := testsupport.WriteLog(t, env.baseDir, "app.log", "one", "two")

	out, _, err := runCLI(t, env, "tail", logPath, "--last", "2")
	if err != nil {
		t.Fatalf("tail: %v", err)
	}
	requireContains(t, out, "0 new of 2 total lines")
}
