package grpcserver

import (
	"context"
	"errors"
	"net"
	"runtime/debug"
	"strings"
	"time"

	pb "github.com/and161185/officehub/gen/go/hub/v1"
	"github.com/and161185/officehub/internal/audit"
	"github.com/and161185/officehub/internal/errs"
	"github.com/and161185/officehub/internal/model"
	"github.com/and161185/officehub/internal/principal"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
)

// Authenticator turns a bearer token into a principal.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (model.Principal, error)
}

// LoggingUnary returns a unary server interceptor for structured logging.
func LoggingUnary(log *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := next(ctx, req)
		logCall(log, ctx, info.FullMethod, err, start)
		return resp, err
	}
}

// LoggingStream logs a stream once it ends.
func LoggingStream(log *zap.Logger) grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, next grpc.StreamHandler) error {
		start := time.Now()
		err := next(srv, ss)
		logCall(log, ss.Context(), info.FullMethod, err, start)
		return err
	}
}

// logCall records metadata only, never payloads.
func logCall(log *zap.Logger, ctx context.Context, method string, err error, start time.Time) {
	fields := []zap.Field{
		zap.String("method", method),
		zap.String("code", status.Code(err).String()),
		zap.Duration("dur", time.Since(start)),
		zap.String("peer", remoteAddr(ctx)),
	}
	if p, ok := PrincipalFromCtx(ctx); ok {
		fields = append(fields, zap.Int64("user", p.UserID))
	}
	log.Info("grpc", fields...)
}

// RecoverUnary returns a unary server interceptor that recovers from panics.
func RecoverUnary(log *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (resp any, err error) {
		defer func() {
			if r := recover(); r != nil {
				logPanic(log, info.FullMethod, r)
				err = status.Error(codes.Internal, "internal")
			}
		}()
		return next(ctx, req)
	}
}

// RecoverStream is RecoverUnary for streams.
func RecoverStream(log *zap.Logger) grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, next grpc.StreamHandler) (err error) {
		defer func() {
			if r := recover(); r != nil {
				logPanic(log, info.FullMethod, r)
				err = status.Error(codes.Internal, "internal")
			}
		}()
		return next(srv, ss)
	}
}

func logPanic(log *zap.Logger, method string, r any) {
	log.Error("panic",
		zap.Any("reason", r),
		zap.ByteString("stack", debug.Stack()),
		zap.String("method", method),
	)
}

// AuthUnary authenticates every hub.v1 call; health and reflection pass through.
func AuthUnary(auth Authenticator) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
		if !protected(info.FullMethod) {
			return next(ctx, req)
		}
		ctx, err := authenticate(ctx, auth)
		if err != nil {
			return nil, err
		}
		return next(ctx, req)
	}
}

// AuthStream is AuthUnary for streams.
func AuthStream(auth Authenticator) grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, next grpc.StreamHandler) error {
		if !protected(info.FullMethod) {
			return next(srv, ss)
		}
		ctx, err := authenticate(ss.Context(), auth)
		if err != nil {
			return err
		}
		return next(srv, &ctxStream{ServerStream: ss, ctx: ctx})
	}
}

type ctxStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s *ctxStream) Context() context.Context { return s.ctx }

func protected(method string) bool {
	return strings.HasPrefix(method, "/"+pb.Hub_ServiceDesc.ServiceName+"/")
}

func authenticate(ctx context.Context, auth Authenticator) (context.Context, error) {
	tok, err := bearerTokenFromMD(ctx)
	if err != nil {
		return ctx, status.Error(codes.Unauthenticated, "no auth")
	}
	p, err := auth.Authenticate(ctx, tok)
	if err != nil {
		if errors.Is(err, errs.ErrUnauthorized) {
			return ctx, status.Error(codes.Unauthenticated, "invalid token")
		}
		return ctx, status.Error(codes.Internal, "resolve principal")
	}
	ctx = WithPrincipal(ctx, p)
	return audit.WithOrigin(ctx, originFrom(ctx)), nil
}

func bearerTokenFromMD(ctx context.Context) (string, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", errors.New("no metadata")
	}
	for _, v := range md.Get("authorization") {
		if t, ok := principal.BearerToken(v); ok {
			return t, nil
		}
	}
	return "", errors.New("no bearer token")
}

func remoteAddr(ctx context.Context) string {
	if p, ok := peer.FromContext(ctx); ok && p.Addr != nil {
		return p.Addr.String()
	}
	return ""
}

func originFrom(ctx context.Context) audit.Origin {
	o := audit.Origin{IP: remoteAddr(ctx)}
	if host, _, err := net.SplitHostPort(o.IP); err == nil {
		o.IP = host
	}
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if ua := md.Get("user-agent"); len(ua) > 0 {
			o.UserAgent = ua[0]
		}
	}
	return o
}
