package game

import (
	"errors"
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// 存档对象键
const machineRecordsObject = "machines"

// ErrNoRecord 没有该名称的存档
var ErrNoRecord = errors.New("no machine record")

// MachineRecord 一台机器的存档
//
// 只记录两项：机器编号和开始帧。机器状态完全由这两项加上时间轴帧号
// 重放得到，因此不需要保存任何部件状态。
type MachineRecord struct {
	Machine int `yaml:"machine"` // 机器编号
	Start   int `yaml:"start"`   // 开始帧
}

// SaveManager 机器存档管理器
//
// 每台摆放的机器按名称保存一条 MachineRecord（YAML 格式）。
// gdata manager 为 nil 时进入降级模式：存档只保留在内存中。
type SaveManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	records      map[string]MachineRecord
}

// NewSaveManager 创建存档管理器
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存存档）
func NewSaveManager(gdataManager *gdata.Manager) *SaveManager {
	if gdataManager == nil {
		log.Printf("[SaveManager] No gdata manager, records are kept in memory only")
	}
	return &SaveManager{
		gdataManager: gdataManager,
		records:      make(map[string]MachineRecord),
	}
}

// Persistent 存档是否会写入磁盘
func (sm *SaveManager) Persistent() bool {
	return sm.gdataManager != nil
}

// Save 保存一台机器的存档
//
// 参数：
//   - name: 机器名称
//   - record: 存档内容
//
// 返回：
//   - error: 序列化或写入失败时返回错误
func (sm *SaveManager) Save(name string, record MachineRecord) error {
	if name == "" {
		return fmt.Errorf("machine record needs a name")
	}
	sm.records[name] = record

	// 降级模式：无法持久化，但不报错
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal machine record %s: %w", name, err)
	}
	if err := sm.gdataManager.SaveObjectProp(machineRecordsObject, name, data); err != nil {
		return fmt.Errorf("failed to save machine record %s: %w", name, err)
	}

	log.Printf("[SaveManager] Saved %s: machine=%d start=%d", name, record.Machine, record.Start)
	return nil
}

// Load 读取一台机器的存档
//
// 返回：
//   - MachineRecord: 存档内容
//   - error: 没有存档时返回 ErrNoRecord，读取或反序列化失败时返回对应错误
func (sm *SaveManager) Load(name string) (MachineRecord, error) {
	if record, ok := sm.records[name]; ok {
		return record, nil
	}

	if sm.gdataManager == nil || !sm.gdataManager.ObjectPropExists(machineRecordsObject, name) {
		return MachineRecord{}, fmt.Errorf("%s: %w", name, ErrNoRecord)
	}

	data, err := sm.gdataManager.LoadObjectProp(machineRecordsObject, name)
	if err != nil {
		return MachineRecord{}, fmt.Errorf("failed to load machine record %s: %w", name, err)
	}

	var record MachineRecord
	if err := yaml.Unmarshal(data, &record); err != nil {
		return MachineRecord{}, fmt.Errorf("failed to unmarshal machine record %s: %w", name, err)
	}

	sm.records[name] = record
	log.Printf("[SaveManager] Loaded %s: machine=%d start=%d", name, record.Machine, record.Start)
	return record, nil
}

// SaveAdapters 保存所有机器
func (sm *SaveManager) SaveAdapters(adapters []*MachineAdapter) error {
	for _, a := range adapters {
		if err := sm.Save(a.Name(), a.Record()); err != nil {
			return err
		}
	}
	return nil
}

// RestoreAdapters 把已有存档应用到机器上，没有存档的机器保持配置值
//
// 返回：
//   - int: 恢复的机器数量
//   - error: 遇到 ErrNoRecord 以外的错误时返回
func (sm *SaveManager) RestoreAdapters(adapters []*MachineAdapter) (int, error) {
	restored := 0
	for _, a := range adapters {
		record, err := sm.Load(a.Name())
		if errors.Is(err, ErrNoRecord) {
			continue
		}
		if err != nil {
			return restored, err
		}
		a.ApplyRecord(record)
		restored++
	}
	return restored, nil
}
