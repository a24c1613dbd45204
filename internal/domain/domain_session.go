package domain

// Session holds the caller-supplied sync credential and signed-in identity.
// The core consumes sessions; it never performs interactive sign-in.
// Session 持有调用方提供的同步凭证和已登录身份。
// 核心只消费会话，从不执行交互式登录。
type Session interface {
	// IsSignedIn 是否已登录
	IsSignedIn() bool

	// Identity 已登录身份的展示标签（如邮箱），未登录时为空
	Identity() string

	// Credential 不透明的 bearer 凭证
	Credential() string
}

// TokenSession is a Session backed by a pre-obtained bearer token.
// TokenSession 是由预先获取的 bearer 令牌支撑的会话。
type TokenSession struct {
	account string
	token   string
}

// NewTokenSession 创建 TokenSession 实例
func NewTokenSession(account string, token string) *TokenSession {
	return &TokenSession{account: account, token: token}
}

func (s *TokenSession) IsSignedIn() bool {
	return s != nil && s.token != ""
}

func (s *TokenSession) Identity() string {
	if s == nil {
		return ""
	}
	return s.account
}

func (s *TokenSession) Credential() string {
	if s == nil {
		return ""
	}
	return s.token
}
