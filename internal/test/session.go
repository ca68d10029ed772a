package test

import (
	"github.com/ecodeclub/ginx/gctx"
	"github.com/ecodeclub/ginx/session"
)

// SessionProvider 直接取测试中间件塞进 ctx 的会话, 不走真实登录链路
type SessionProvider struct{}

func init() {
	session.SetDefaultProvider(&SessionProvider{})
}

func (s *SessionProvider) NewSession(_ *gctx.Context, _ int64, _ map[string]string, _ map[string]any) (session.Session, error) {
	return nil, nil
}

func (s *SessionProvider) Get(ctx *gctx.Context) (session.Session, error) {
	val, _ := ctx.Get("_session")
	return val.(session.Session), nil
}

func (s *SessionProvider) Destroy(_ *gctx.Context) error {
	return nil
}

func (s *SessionProvider) UpdateClaims(_ *gctx.Context, _ session.Claims) error {
	return nil
}

func (s *SessionProvider) RenewAccessToken(_ *gctx.Context) error {
	return nil
}
