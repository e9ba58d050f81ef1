package grpcserver

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/and161185/officehub/internal/errs"
	"github.com/and161185/officehub/internal/model"
	"github.com/and161185/officehub/internal/principal"
	"github.com/golang-jwt/jwt/v5"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func makeJWT(t *testing.T, sub string, key []byte, method jwt.SigningMethod, iat time.Time, ttl time.Duration) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   sub,
		IssuedAt:  jwt.NewNumericDate(iat),
		NotBefore: jwt.NewNumericDate(iat),
		ExpiresAt: jwt.NewNumericDate(iat.Add(ttl)),
	}
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	if err != nil {
		t.Fatalf("SignedString: %v", err)
	}
	return s
}

func ctxWithAuth(token string) context.Context {
	md := metadata.New(map[string]string{
		"authorization": "Bearer " + token,
	})
	return metadata.NewIncomingContext(context.Background(), md)
}

type usersByID map[int64]model.User

func (u usersByID) GetByID(_ context.Context, id int64) (*model.User, error) {
	v, ok := u[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return &v, nil
}

func newAuthenticator(key []byte, users usersByID) *principal.Authenticator {
	return &principal.Authenticator{
		Verifier: principal.NewVerifier(key),
		Resolver: principal.NewResolver(users, 16, time.Minute),
	}
}

func Test_bearerTokenFromMD_OkAndErrors(t *testing.T) {
	t.Parallel()

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Bearer abc.def.ghi"))
	got, err := bearerTokenFromMD(ctx)
	if err != nil || got != "abc.def.ghi" {
		t.Fatalf("ok: got=%q err=%v", got, err)
	}

	ctx = metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Basic foo"))
	if _, err := bearerTokenFromMD(ctx); err == nil {
		t.Fatalf("want error on non-bearer")
	}

	ctx = metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Bearer   "))
	if _, err := bearerTokenFromMD(ctx); err == nil {
		t.Fatalf("want error on empty token")
	}

	if _, err := bearerTokenFromMD(context.Background()); err == nil {
		t.Fatalf("want error on no metadata")
	}
}

func Test_authenticate_Valid(t *testing.T) {
	t.Parallel()

	key := []byte("secret")
	auth := newAuthenticator(key, usersByID{7: {ID: 7, Role: model.RoleManager, Active: true}})
	j := makeJWT(t, strconv.Itoa(7), key, jwt.SigningMethodHS256, time.Now().UTC().Add(-time.Minute), 10*time.Minute)

	ctx, err := authenticate(ctxWithAuth(j), auth)
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	p, ok := PrincipalFromCtx(ctx)
	if !ok || p.UserID != 7 || p.Role != model.RoleManager {
		t.Fatalf("principal mismatch: %+v", p)
	}
}

func Test_authenticate_Rejects(t *testing.T) {
	t.Parallel()

	key := []byte("secret")
	now := time.Now().UTC()
	auth := newAuthenticator(key, usersByID{
		7: {ID: 7, Role: model.RoleEmployee, Active: true},
		8: {ID: 8, Role: model.RoleEmployee, Active: false},
	})
	cases := map[string]context.Context{
		"no metadata":   context.Background(),
		"expired":       ctxWithAuth(makeJWT(t, "7", key, jwt.SigningMethodHS256, now.Add(-2*time.Hour), -time.Hour)),
		"wrong alg":     ctxWithAuth(makeJWT(t, "7", key, jwt.SigningMethodHS384, now, time.Hour)),
		"bad subject":   ctxWithAuth(makeJWT(t, "not-a-number", key, jwt.SigningMethodHS256, now, time.Hour)),
		"unknown user":  ctxWithAuth(makeJWT(t, "99", key, jwt.SigningMethodHS256, now, time.Hour)),
		"inactive user": ctxWithAuth(makeJWT(t, "8", key, jwt.SigningMethodHS256, now, time.Hour)),
		"garbage":       ctxWithAuth("this-is-not-a-jwt"),
	}
	for name, ctx := range cases {
		if _, err := authenticate(ctx, auth); err == nil {
			t.Fatalf("%s: want error", name)
		}
	}
}

type failingAuth struct{}

func (failingAuth) Authenticate(context.Context, string) (model.Principal, error) {
	return model.Principal{}, errors.New("db down")
}

func Test_authenticate_StorageFailureIsInternal(t *testing.T) {
	t.Parallel()

	_, err := authenticate(ctxWithAuth("tok"), failingAuth{})
	if status.Code(err) != codes.Internal {
		t.Fatalf("want Internal, got %v", err)
	}
}
