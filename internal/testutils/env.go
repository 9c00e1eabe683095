package testutils

import "os"

// SavedEnv 记录一个环境变量被覆盖前的取值，用于测试结束后还原。
type SavedEnv struct {
	Key   string
	Had   bool
	Value string
}

// SetEnv 覆盖环境变量并返回覆盖前的状态。
// 典型用法是配合 RestoreEnv 在 defer 中成对还原。
func SetEnv(key, value string) SavedEnv {
	prev, had := os.LookupEnv(key)
	_ = os.Setenv(key, value)
	return SavedEnv{Key: key, Had: had, Value: prev}
}

// RestoreEnv 按保存的状态还原环境变量，原本不存在的会被删除。
func RestoreEnv(envs []SavedEnv) {
	for _, env := range envs {
		if env.Had {
			_ = os.Setenv(env.Key, env.Value)
		} else {
			_ = os.Unsetenv(env.Key)
		}
	}
}
