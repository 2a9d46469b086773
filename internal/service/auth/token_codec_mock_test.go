package auth

import (
	"sync"

	"github.com/google/uuid"
)

var _ tokenCodec = &tokenCodecMock{}

type tokenCodecMock struct {
	IssueFunc  func(userID uuid.UUID) (string, error)
	VerifyFunc func(token string) (uuid.UUID, error)

	calls struct {
		Issue []struct {
			UserID uuid.UUID
		}
		Verify []struct {
			Token string
		}
	}
	lockIssue  sync.RWMutex
	lockVerify sync.RWMutex
}

func (mock *tokenCodecMock) Issue(userID uuid.UUID) (string, error) {
	if mock.IssueFunc == nil {
		panic("tokenCodecMock.IssueFunc: method is nil but tokenCodec.Issue was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
	}{UserID: userID}
	mock.lockIssue.Lock()
	mock.calls.Issue = append(mock.calls.Issue, callInfo)
	mock.lockIssue.Unlock()
	return mock.IssueFunc(userID)
}

func (mock *tokenCodecMock) IssueCalls() []struct {
	UserID uuid.UUID
} {
	mock.lockIssue.RLock()
	calls := mock.calls.Issue
	mock.lockIssue.RUnlock()
	return calls
}

func (mock *tokenCodecMock) Verify(token string) (uuid.UUID, error) {
	if mock.VerifyFunc == nil {
		panic("tokenCodecMock.VerifyFunc: method is nil but tokenCodec.Verify was just called")
	}
	callInfo := struct {
		Token string
	}{Token: token}
	mock.lockVerify.Lock()
	mock.calls.Verify = append(mock.calls.Verify, callInfo)
	mock.lockVerify.Unlock()
	return mock.VerifyFunc(token)
}

func (mock *tokenCodecMock) VerifyCalls() []struct {
	Token string
} {
	mock.lockVerify.RLock()
	calls := mock.calls.Verify
	mock.lockVerify.RUnlock()
	return calls
}
