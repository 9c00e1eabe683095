package utils

import (
	"bytes"
	"strings"
	"testing"
)

// 测试内容：验证用户名规则（字符集、纯数字、空值）。
func TestValidateUsername(t *testing.T) {
	cases := []struct {
		name  string
		input string
		ok    bool
	}{
		{"正常用户名", "alice_01", true},
		{"空用户名", "", false},
		{"包含非法字符", "alice!", false},
		{"纯数字", "12345", false},
		{"中文", "爱丽丝", false},
	}
	for _, tc := range cases {
		ok, _ := ValidateUsername(tc.input)
		if ok != tc.ok {
			t.Fatalf("%s: 期望 %v，实际 %v", tc.name, tc.ok, ok)
		}
	}
}

// 测试内容：验证密码规则（非空、不超过 bcrypt 上限）。
func TestValidatePassword(t *testing.T) {
	cases := []struct {
		name  string
		input string
		ok    bool
	}{
		{"正常密码", "abc12345", true},
		{"短密码", "pw1", true},
		{"纯字母", "abcdefgh", true},
		{"空密码", "", false},
		{"超长密码", strings.Repeat("a", 73), false},
	}
	for _, tc := range cases {
		ok, _ := ValidatePassword(tc.input)
		if ok != tc.ok {
			t.Fatalf("%s: 期望 %v，实际 %v", tc.name, tc.ok, ok)
		}
	}
}

// 测试内容：验证图片内容检测能识别 PNG 魔数并拒绝伪装扩展名。
func TestValidateImageContent(t *testing.T) {
	pngHeader := []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0}

	ok, _ := ValidateImageContent(bytes.NewReader(pngHeader), ".png")
	if !ok {
		t.Fatalf("期望 PNG 内容通过 .png 校验")
	}

	ok, msg := ValidateImageContent(bytes.NewReader(pngHeader), ".jpg")
	if ok {
		t.Fatalf("期望 PNG 内容伪装 .jpg 被拒绝")
	}
	if msg == "" {
		t.Fatalf("期望返回拒绝原因")
	}

	ok, _ = ValidateImageContent(bytes.NewReader([]byte("plain text content")), ".png")
	if ok {
		t.Fatalf("期望文本内容被拒绝")
	}
}
