package service

import "testing"

// 测试内容：验证站点统计返回正确的用户数与图片数。
func TestGetSystemStats(t *testing.T) {
	svc, gdb := setupTestService(t)

	stats, err := svc.GetSystemStats()
	if err != nil {
		t.Fatalf("GetSystemStats: %v", err)
	}
	if stats.Users != 0 || stats.Images != 0 {
		t.Fatalf("空库期望 0/0，实际 %+v", stats)
	}

	alice := createTestUser(t, gdb, "alice", "abc12345")
	createTestImage(t, gdb, alice.ID, "a.png", 100)
	createTestImage(t, gdb, alice.ID, "b.png", 200)

	stats, err = svc.GetSystemStats()
	if err != nil {
		t.Fatalf("GetSystemStats: %v", err)
	}
	if stats.Users != 1 || stats.Images != 2 {
		t.Fatalf("期望 1 个用户 2 张图片，实际 %+v", stats)
	}
}
