package store

// seed loads the sample workspace into a fresh database. Every insert uses
// OR IGNORE so re-running a partially applied migration is harmless.
func (s *Store) seed() error {
	const data = `
	INSERT OR IGNORE INTO columns (id, title, position) VALUES
		('todo',       'To Do',       1),
		('inprogress', 'In Progress', 2),
		('review',     'Review',      3),
		('done',       'Done',        4);

	INSERT OR IGNORE INTO cards
		(id, column_id, position, title, description, priority, due_date, comments, attachments, assignees) VALUES
		('t1', 'todo',       1, 'Research competitors',   'Analyze top 5 competitors for the new product launch',  'Medium', '2025-04-15', 3, 2, 'JD'),
		('t2', 'todo',       2, 'Create wireframes',      'Design initial wireframes for mobile application',      'High',   '2025-04-20', 5, 1, 'AS,JD'),
		('t3', 'todo',       3, 'Content strategy',       'Develop content strategy for Q2 marketing campaign',    'Low',    '2025-05-01', 0, 3, 'MJ'),
		('t4', 'inprogress', 1, 'UI Implementation',      'Implement new UI components for dashboard',             'High',   '2025-04-18', 8, 4, 'JD,AS'),
		('t5', 'inprogress', 2, 'API Integration',        'Integrate payment gateway API',                         'Medium', '2025-04-25', 2, 0, 'MJ'),
		('t6', 'review',     1, 'User Testing',           'Conduct user testing sessions for new features',        'Medium', '2025-04-12', 4, 1, 'AS'),
		('t7', 'done',       1, 'Requirements Gathering', 'Collect and document project requirements',             'High',   '2025-04-05', 7, 5, 'JD,MJ,AS'),
		('t8', 'done',       2, 'Project Kickoff',        'Conduct initial project kickoff meeting',               'Medium', '2025-04-01', 3, 2, 'JD');

	INSERT OR IGNORE INTO projects (id, name) VALUES
		(1, 'Website Redesign'),
		(2, 'Marketing Campaign');

	INSERT OR IGNORE INTO timeline_tasks
		(id, project_id, title, start_date, end_date, progress, assignees, color) VALUES
		(1, 1, 'Research & Planning',    '2025-04-08', '2025-04-15', 100, 'JD,AS', '#2ECC71'),
		(2, 1, 'Design Phase',           '2025-04-15', '2025-04-22', 70,  'AS',    '#6C63FF'),
		(3, 1, 'Development',            '2025-04-20', '2025-05-05', 30,  'JD,MJ', '#2EC4B6'),
		(4, 2, 'Content Creation',       '2025-04-10', '2025-04-20', 80,  'AS',    '#FF6B6B'),
		(5, 2, 'Social Media Schedule',  '2025-04-18', '2025-04-25', 40,  'MJ',    '#F39C12');

	INSERT OR IGNORE INTO folders (id, name) VALUES
		(1, 'Políticas Públicas'),
		(2, 'Fiscalização'),
		(3, 'Projetos de Lei'),
		(4, 'Comunicação'),
		(5, 'Mobilização');

	INSERT OR IGNORE INTO documents
		(id, title, content, doc_type, status, tags, starred, author, folder_id, created_at, updated_at) VALUES
		(1, 'Estudo sobre transporte público municipal',
		    'Este documento contém uma análise detalhada do sistema de transporte público da cidade, incluindo pontos de melhoria e benchmarks de outras cidades.',
		    'research', 'published', 'transporte,mobilidade,pesquisa', 1, 'Ana Silva', 1,
		    '2025-04-02T09:00:00Z', '2025-04-02T09:00:00Z'),
		(2, 'Template para Requerimento de Informação',
		    'Template padrão para solicitar informações oficiais à órgãos públicos.',
		    'template', 'published', 'template,documento,oficial', 0, 'Carlos Oliveira', 3,
		    '2025-04-01T09:00:00Z', '2025-04-01T09:00:00Z'),
		(3, 'Análise do orçamento municipal de 2025',
		    'Análise detalhada do orçamento municipal aprovado para 2025, com foco nas áreas de saúde e educação.',
		    'research', 'draft', 'orçamento,finanças,análise', 1, 'Marcela Santos', 2,
		    '2025-04-05T09:00:00Z', '2025-04-07T09:00:00Z'),
		(4, 'Perguntas frequentes sobre atendimento ao cidadão',
		    'Lista de perguntas e respostas comuns sobre os serviços oferecidos pelo gabinete para atendimento ao cidadão.',
		    'faq', 'published', 'atendimento,cidadão,faq', 0, 'Paulo Mendes', 5,
		    '2025-03-20T09:00:00Z', '2025-03-20T09:00:00Z');

	INSERT OR IGNORE INTO events (id, title, day, time_range, attendees, description) VALUES
		(1, 'Team Meeting',        '2025-04-15', '10:00 AM - 11:30 AM', 'John D.,Alice S.,Mike J.', 'Weekly team sync to discuss project progress and roadblocks'),
		(2, 'Client Presentation', '2025-04-18', '2:00 PM - 3:30 PM',   'John D.,Alice S.',         'Present project milestones and gather feedback'),
		(3, 'Design Review',       '2025-04-20', '11:00 AM - 12:00 PM', 'Alice S.,Mike J.',         'Review new UI designs for the dashboard feature'),
		(4, 'Planning Session',    '2025-04-10', '9:00 AM - 11:00 AM',  'John D.,Alice S.,Mike J.', 'Plan upcoming sprint and assign tasks');

	INSERT OR IGNORE INTO teams (id, name, description, color) VALUES
		(1, 'Comunicação',         'Responsável pela comunicação do mandato, conteúdo para redes sociais e branding.',      '#9B59B6'),
		(2, 'Mobilização',         'Responsável pelo engajamento, atendimento e coleta de demandas da população.',          '#3498DB'),
		(3, 'Fiscalização',        'Monitora gastos da prefeitura, ações, nomeações e busca irregularidades.',              '#2ECC71'),
		(4, 'Políticas Públicas',  'Estudo e análise de políticas públicas, pesquisas e embasamento teórico.',              '#F39C12'),
		(5, 'Execução Legislativa','Elaboração de projetos de lei, requerimentos e outros documentos jurídicos.',           '#E74C3C');

	INSERT OR IGNORE INTO team_members (id, team_id, name, role, avatar, is_admin) VALUES
		(1,  1, 'Ana Silva',      'Coordenadora', 'AS', 1),
		(2,  1, 'Bruno Costa',    'Designer',     'BC', 0),
		(3,  1, 'Carolina Lima',  'Social Media', 'CL', 0),
		(4,  2, 'Diego Santos',   'Coordenador',  'DS', 1),
		(5,  2, 'Elena Oliveira', 'Atendimento',  'EO', 0),
		(6,  3, 'Fábio Mendes',   'Coordenador',  'FM', 1),
		(7,  3, 'Gabriela Castro','Analista',     'GC', 0),
		(8,  4, 'Hugo Lima',      'Coordenador',  'HL', 1),
		(9,  4, 'Isabela Rocha',  'Pesquisadora', 'IR', 0),
		(10, 5, 'João Pereira',   'Coordenador',  'JP', 1),
		(11, 5, 'Karina Souza',   'Advogada',     'KS', 0);
	`
	_, err := s.db.Exec(data)
	return err
}
