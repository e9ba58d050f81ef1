package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	pb "github.com/and161185/officehub/gen/go/hub/v1"
	"github.com/golang-jwt/jwt/v5"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func withTmpConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return filepath.Join(dir, "officehub")
}

func Test_cfgDir_And_Paths(t *testing.T) {
	base := withTmpConfig(t)
	if got := cfgDir(); got != base {
		t.Fatalf("cfgDir=%q, want %q", got, base)
	}
	if !strings.HasPrefix(tokenPath(), base) || !strings.HasSuffix(tokenPath(), "token.json") {
		t.Fatalf("tokenPath unexpected: %s", tokenPath())
	}
}

func Test_token_SaveLoad(t *testing.T) {
	_ = withTmpConfig(t)

	if _, err := loadToken(); err == nil {
		t.Fatalf("expected error when token file missing")
	}
	if err := saveToken("tok", time.Now().Add(time.Minute)); err != nil {
		t.Fatalf("saveToken: %v", err)
	}
	tok, err := loadToken()
	if err != nil || tok != "tok" {
		t.Fatalf("loadToken: tok=%q err=%v", tok, err)
	}
	st, err := os.Stat(tokenPath())
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if st.Mode().Perm() != 0o600 {
		t.Fatalf("token file mode %v, want 0600", st.Mode().Perm())
	}
	if err := saveToken("tok2", time.Now().Add(-time.Minute)); err != nil {
		t.Fatalf("saveToken expired: %v", err)
	}
	if _, err := loadToken(); err == nil {
		t.Fatalf("want error for expired token")
	}
}

func Test_tokenExpiry(t *testing.T) {
	t.Parallel()

	exp := time.Now().Add(2 * time.Hour).Truncate(time.Second)
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "7",
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("any-key"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	got, err := tokenExpiry(tok)
	if err != nil {
		t.Fatalf("tokenExpiry: %v", err)
	}
	if !got.Equal(exp) {
		t.Fatalf("exp=%v, want %v", got, exp)
	}

	noExp, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "7"}).SignedString([]byte("k"))
	got, err = tokenExpiry(noExp)
	if err != nil || got.Before(time.Now()) {
		t.Fatalf("missing exp should default to the near future: %v %v", got, err)
	}

	if _, err := tokenExpiry("not-a-jwt"); err == nil {
		t.Fatalf("garbage token must fail")
	}
}

func Test_readAll_File_And_Stdin(t *testing.T) {
	tmp := filepath.Join(t.TempDir(), "f.txt")
	_ = os.WriteFile(tmp, []byte("hello"), 0o600)
	b, err := readAll(tmp)
	if err != nil || string(b) != "hello" {
		t.Fatalf("readAll(file): %q %v", b, err)
	}

	r, w, _ := os.Pipe()
	old := os.Stdin
	os.Stdin = r
	defer func() { os.Stdin = old }()
	go func() { _, _ = io.WriteString(w, "from-stdin"); _ = w.Close() }()
	b, err = readAll("-")
	if err != nil || string(b) != "from-stdin" {
		t.Fatalf("readAll(stdin): %q %v", b, err)
	}
}

func Test_printJSON_WritesPretty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printJSON(&buf, map[string]any{"a": 1})

	var m map[string]any
	if json.Unmarshal(buf.Bytes(), &m) != nil || m["a"] != float64(1) {
		t.Fatalf("printJSON produced invalid json: %s", buf.String())
	}
	if !strings.Contains(buf.String(), "\n  ") {
		t.Fatalf("printJSON should indent")
	}
}

func Test_bearerCreds_Metadata(t *testing.T) {
	t.Parallel()

	b := bearerCreds{token: "T", secure: true}
	md, err := b.GetRequestMetadata(context.Background())
	if err != nil {
		t.Fatalf("GetRequestMetadata: %v", err)
	}
	if md["authorization"] != "Bearer T" {
		t.Fatalf("auth header mismatch: %v", md)
	}
	if !b.RequireTransportSecurity() {
		t.Fatalf("bearerCreds over TLS must require transport security")
	}
	if (bearerCreds{token: "T"}).RequireTransportSecurity() {
		t.Fatalf("plaintext creds must not require transport security")
	}
}

func Test_loadTLS_Variants(t *testing.T) {
	t.Parallel()

	creds, err := loadTLS("", true)
	if err != nil || creds == nil {
		t.Fatalf("insecure: %v %v", creds, err)
	}

	creds, err = loadTLS("", false)
	if err != nil || creds == nil {
		t.Fatalf("default tls: %v %v", creds, err)
	}

	tmp := filepath.Join(t.TempDir(), "bad.pem")
	_ = os.WriteFile(tmp, []byte("not pem"), 0o600)
	creds, err = loadTLS(tmp, false)
	if err == nil || creds != nil {
		t.Fatalf("bad CA should error, got creds=%v err=%v", creds, err)
	}

	if _, err := loadTLS(filepath.Join(t.TempDir(), "missing.pem"), false); err == nil {
		t.Fatalf("missing CA file should error")
	}
}

func Test_dial_Plaintext(t *testing.T) {
	t.Parallel()

	cc, cli, err := dial(dialOpts{addr: "localhost:1", plaintext: true}, "tok")
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer cc.Close()
	if cli == nil {
		t.Fatalf("nil client")
	}
}

func Test_dialOpts_msgSize(t *testing.T) {
	t.Parallel()

	if got := (dialOpts{}).msgSize(); got != defaultMaxMsg {
		t.Fatalf("default msgSize=%d, want %d", got, defaultMaxMsg)
	}
	if got := (dialOpts{maxMsg: 1 << 10}).msgSize(); got != 1<<10 {
		t.Fatalf("msgSize=%d, want %d", got, 1<<10)
	}
}

type bigDownloads struct {
	pb.UnimplementedHubServer
}

func (bigDownloads) DownloadFile(_ context.Context, in *pb.FileRequest) (*pb.DownloadFileResponse, error) {
	return &pb.DownloadFileResponse{
		File:    &pb.File{Id: in.GetFileId(), Name: "big.bin"},
		Content: bytes.Repeat([]byte{1}, 6<<20),
	}, nil
}

func (bigDownloads) UploadFile(_ context.Context, in *pb.UploadFileRequest) (*pb.FileResponse, error) {
	return &pb.FileResponse{File: &pb.File{Id: 1, Name: in.GetName(), Size: int64(len(in.GetContent()))}}, nil
}

func Test_dial_LargeMessages(t *testing.T) {
	t.Parallel()

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	gs := grpc.NewServer(grpc.MaxRecvMsgSize(16 << 20))
	pb.RegisterHubServer(gs, bigDownloads{})
	go func() { _ = gs.Serve(lis) }()
	t.Cleanup(gs.Stop)

	cc, cli, err := dial(dialOpts{addr: lis.Addr().String(), plaintext: true}, "")
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer cc.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	down, err := cli.DownloadFile(ctx, &pb.FileRequest{FileId: 3})
	if err != nil {
		t.Fatalf("download: %v", err)
	}
	if len(down.GetContent()) != 6<<20 {
		t.Fatalf("download size %d", len(down.GetContent()))
	}
	up, err := cli.UploadFile(ctx, &pb.UploadFileRequest{Name: "big.bin", Content: make([]byte, 7<<20)})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if up.GetFile().GetSize() != 7<<20 {
		t.Fatalf("upload size %d", up.GetFile().GetSize())
	}

	small, cliSmall, err := dial(dialOpts{addr: lis.Addr().String(), plaintext: true, maxMsg: 1 << 20}, "")
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer small.Close()
	if _, err := cliSmall.DownloadFile(ctx, &pb.FileRequest{FileId: 3}); status.Code(err) != codes.ResourceExhausted {
		t.Fatalf("download over limit: %v", err)
	}
}
